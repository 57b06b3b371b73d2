package v1

import (
	"net/http"

	"github.com/coreflow-app/backend/internal/engine"
	"github.com/coreflow-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterProjectionRoutes registers the routes for wealth projections with
// the RouterGroup that is passed.
func RegisterProjectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProjection)
	r.POST("", CreateProjection)
}

type ProjectionRequest struct {
	MonthlySavings decimal.Decimal `json:"monthlySavings" example:"1000"`            // Amount saved every month
	DurationMonths int             `json:"durationMonths" example:"12" default:"12"` // Number of months to project
}

type ProjectionResponse struct {
	Data  []engine.ProjectedMonth `json:"data"`  // The projected series, one entry per month
	Error *string                 `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projections
// @Success		204
// @Router			/v1/projections [options]
func OptionsProjection(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Project wealth growth
// @Description	Compounds a monthly savings amount with the assumed annual return rate and reports nominal and inflation adjusted values per month. A non-positive savings amount yields a series of zeroes of the requested length.
// @Tags			Projections
// @Accept			json
// @Produce		json
// @Success		200			{object}	ProjectionResponse
// @Failure		400			{object}	ProjectionResponse
// @Param			projection	body		ProjectionRequest	true	"Projection inputs"
// @Router			/v1/projections [post]
func CreateProjection(c *gin.Context) {
	request := ProjectionRequest{DurationMonths: 12}

	err := httputil.BindData(c, &request)
	if err == nil {
		err = validateDuration(request.DurationMonths)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ProjectionResponse{
		Data: engine.Project(request.MonthlySavings, request.DurationMonths),
	})
}
