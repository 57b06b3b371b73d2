package v1

import (
	"net/http"

	"github.com/coreflow-app/backend/internal/httputil"
	"github.com/coreflow-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Plan        string `json:"plan" example:"https://example.com/api/v1/plan"`               // URL of the budget plan endpoint
	Projections string `json:"projections" example:"https://example.com/api/v1/projections"` // URL of the wealth projection endpoint
	Scenarios   string `json:"scenarios" example:"https://example.com/api/v1/scenarios"`     // URL of the scenario endpoints
	Lifestyles  string `json:"lifestyles" example:"https://example.com/api/v1/lifestyles"`   // URL of the lifestyle rule list
	Moods       string `json:"moods" example:"https://example.com/api/v1/moods"`             // URL of the mood modifier list
	Profiles    string `json:"profiles" example:"https://example.com/api/v1/profiles"`       // URL of the profile list endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.ContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Plan:        url + "/plan",
			Projections: url + "/projections",
			Scenarios:   url + "/scenarios",
			Lifestyles:  url + "/lifestyles",
			Moods:       url + "/moods",
			Profiles:    url + "/profiles",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
