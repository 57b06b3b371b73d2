package v1

import (
	"net/http"

	"github.com/coreflow-app/backend/internal/engine"
	"github.com/coreflow-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterConfigurationRoutes registers the routes for the static engine
// configuration with the RouterGroup that is passed. The presentation layer
// builds its lifestyle and mood selectors from these.
func RegisterConfigurationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/lifestyles", OptionsLifestyles)
	r.GET("/lifestyles", GetLifestyles)

	r.OPTIONS("/moods", OptionsMoods)
	r.GET("/moods", GetMoods)
}

type LifestyleListResponse struct {
	Data map[string]engine.LifestyleRule `json:"data"` // All lifestyles with their allocation rules
}

type MoodListResponse struct {
	Data map[string]decimal.Decimal `json:"data"` // All moods with the income fraction they shift
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Configuration
// @Success		204
// @Router			/v1/lifestyles [options]
func OptionsLifestyles(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List lifestyles
// @Description	Returns all supported lifestyles and the income fractions their allocation rules assign
// @Tags			Configuration
// @Produce		json
// @Success		200	{object}	LifestyleListResponse
// @Router			/v1/lifestyles [get]
func GetLifestyles(c *gin.Context) {
	c.JSON(http.StatusOK, LifestyleListResponse{Data: engine.LifestyleRules})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Configuration
// @Success		204
// @Router			/v1/moods [options]
func OptionsMoods(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List moods
// @Description	Returns all supported financial moods and the fraction of income they shift between Wants and Savings
// @Tags			Configuration
// @Produce		json
// @Success		200	{object}	MoodListResponse
// @Router			/v1/moods [get]
func GetMoods(c *gin.Context) {
	c.JSON(http.StatusOK, MoodListResponse{Data: engine.MoodModifiers})
}
