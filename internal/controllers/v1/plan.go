package v1

import (
	"net/http"

	"github.com/coreflow-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the routes for budget plans with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPlan)
	r.POST("", CreatePlan)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Compute budget plan
// @Description	Computes the full financial report for a set of budget inputs: the mood adjusted budget plan, the fitness score, a personalized insight text, the wealth projection and the mood impact. Every input combination has a defined result, degenerate inputs like a non-positive income yield an all-zero plan.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Param			plan	body		PlanRequest	true	"Budget inputs"
// @Router			/v1/plan [post]
func CreatePlan(c *gin.Context) {
	request := PlanRequest{ProjectionMonths: 12}

	err := httputil.BindData(c, &request)
	if err == nil {
		err = validateDuration(request.ProjectionMonths)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	report := newReport(request)
	c.JSON(http.StatusOK, ReportResponse{Data: &report})
}

// validateDuration guards the API against unusable projection durations.
// The engine itself accepts any duration.
func validateDuration(months int) error {
	if months < 1 {
		return errDurationNotPositive
	}

	if months > 1200 {
		return errDurationTooLong
	}

	return nil
}
