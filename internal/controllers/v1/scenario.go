package v1

import (
	"net/http"

	"github.com/coreflow-app/backend/internal/engine"
	"github.com/coreflow-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterScenarioRoutes registers the routes for scenario calculations
// with the RouterGroup that is passed.
func RegisterScenarioRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/what-if", OptionsWhatIf)
	r.POST("/what-if", CreateWhatIf)

	r.OPTIONS("/splurge", OptionsSplurge)
	r.POST("/splurge", CreateSplurge)
}

// WhatIfRequest explores moving a fraction of income between Wants and
// Savings on top of a computed plan.
type WhatIfRequest struct {
	Income            decimal.Decimal `json:"income" example:"50000"`                   // Monthly income
	FixedCommitments  decimal.Decimal `json:"fixedCommitments" example:"15000"`         // Fixed monthly commitments like rent
	Lifestyle         string          `json:"lifestyle" example:"Working Professional"` // Lifestyle the allocation rule is chosen by
	Mood              string          `json:"mood" example:"Balanced"`                  // Current financial mood
	SavingsAdjustment decimal.Decimal `json:"savingsAdjustment" example:"0.05"`         // Fraction of income moved from Wants into Savings, may be negative
}

// WhatIfScenario compares the adjusted budget to the unadjusted one.
type WhatIfScenario struct {
	MonthlySavings       decimal.Decimal `json:"monthlySavings" example:"12500"`        // Savings after the adjustment
	MonthlyWants         decimal.Decimal `json:"monthlyWants" example:"12500"`          // Wants after the adjustment
	SavingsDelta         decimal.Decimal `json:"savingsDelta" example:"2500"`           // Savings change against the unadjusted plan
	WantsDelta           decimal.Decimal `json:"wantsDelta" example:"-2500"`            // Wants change against the unadjusted plan
	ProjectedWealth      decimal.Decimal `json:"projectedWealth" example:"154728.86"`   // Nominal wealth after 12 months with the adjusted savings
	ProjectedWealthDelta decimal.Decimal `json:"projectedWealthDelta" example:"30945.77"` // Change against the unadjusted projection
}

type WhatIfResponse struct {
	Data  *WhatIfScenario `json:"data"`  // The scenario comparison
	Error *string         `json:"error"` // The error, if any occurred
}

// SplurgeRequest quantifies the long term cost of a recurring expense.
type SplurgeRequest struct {
	Amount         decimal.Decimal `json:"amount" example:"1000"`                    // Recurring monthly splurge
	DurationMonths int             `json:"durationMonths" example:"60" default:"60"` // Number of months to project
}

type SplurgeScenario struct {
	DurationMonths int             `json:"durationMonths" example:"60"`     // Number of months projected
	LostWealth     decimal.Decimal `json:"lostWealth" example:"71592.90"`   // Wealth the splurge amount would have grown to if invested
}

type SplurgeResponse struct {
	Data  *SplurgeScenario `json:"data"`  // The cost of the splurge
	Error *string          `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scenarios
// @Success		204
// @Router			/v1/scenarios/what-if [options]
func OptionsWhatIf(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scenarios
// @Success		204
// @Router			/v1/scenarios/splurge [options]
func OptionsSplurge(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Explore a savings adjustment
// @Description	Computes the budget plan for the inputs, then moves the adjustment fraction of income from Wants into Savings, clamping both at zero, and compares the 12-month wealth projections of both variants.
// @Tags			Scenarios
// @Accept			json
// @Produce		json
// @Success		200			{object}	WhatIfResponse
// @Failure		400			{object}	WhatIfResponse
// @Param			scenario	body		WhatIfRequest	true	"Scenario inputs"
// @Router			/v1/scenarios/what-if [post]
func CreateWhatIf(c *gin.Context) {
	var request WhatIfRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WhatIfResponse{
			Error: &s,
		})
		return
	}

	plan := engine.NewPlan(request.Income, request.FixedCommitments, request.Lifestyle, request.Mood)
	change := request.Income.Mul(request.SavingsAdjustment)

	savings := plan.Savings.Add(change)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	wants := plan.Wants.Sub(change)
	if wants.IsNegative() {
		wants = decimal.Zero
	}

	scenario := WhatIfScenario{
		MonthlySavings:  savings,
		MonthlyWants:    wants,
		SavingsDelta:    savings.Sub(plan.Savings),
		WantsDelta:      wants.Sub(plan.Wants),
		ProjectedWealth: finalNominal(engine.Project(savings, 12)),
	}
	scenario.ProjectedWealthDelta = scenario.ProjectedWealth.Sub(finalNominal(engine.Project(plan.Savings, 12)))

	c.JSON(http.StatusOK, WhatIfResponse{Data: &scenario})
}

// @Summary		Quantify a recurring splurge
// @Description	Reports the wealth a recurring monthly amount would grow to over the duration if it were invested instead of spent.
// @Tags			Scenarios
// @Accept			json
// @Produce		json
// @Success		200			{object}	SplurgeResponse
// @Failure		400			{object}	SplurgeResponse
// @Param			scenario	body		SplurgeRequest	true	"Splurge inputs"
// @Router			/v1/scenarios/splurge [post]
func CreateSplurge(c *gin.Context) {
	request := SplurgeRequest{DurationMonths: 60}

	err := httputil.BindData(c, &request)
	if err == nil {
		err = validateDuration(request.DurationMonths)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), SplurgeResponse{
			Error: &s,
		})
		return
	}

	scenario := SplurgeScenario{
		DurationMonths: request.DurationMonths,
		LostWealth:     finalNominal(engine.Project(request.Amount, request.DurationMonths)),
	}

	c.JSON(http.StatusOK, SplurgeResponse{Data: &scenario})
}

// finalNominal returns the nominal wealth at the end of a projection.
func finalNominal(series []engine.ProjectedMonth) decimal.Decimal {
	if len(series) == 0 {
		return decimal.Zero
	}

	return series[len(series)-1].Nominal
}
