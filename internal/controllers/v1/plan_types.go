package v1

import (
	"github.com/coreflow-app/backend/internal/engine"
	"github.com/shopspring/decimal"
)

// PlanRequest is a full set of budget inputs.
type PlanRequest struct {
	Income           decimal.Decimal `json:"income" example:"50000"`                      // Monthly income
	FixedCommitments decimal.Decimal `json:"fixedCommitments" example:"15000"`            // Fixed monthly commitments like rent
	Lifestyle        string          `json:"lifestyle" example:"Working Professional"`    // Lifestyle the allocation rule is chosen by, unknown values use the default rule
	Mood             string          `json:"mood" example:"Balanced"`                     // Current financial mood, unknown values shift nothing
	ProjectionMonths int             `json:"projectionMonths" example:"12" default:"12"`  // Number of months to project the savings for
}

// Report is everything the engine can derive from one set of budget inputs.
type Report struct {
	Plan       engine.Plan             `json:"plan"`       // The budget plan after mood adjustment
	Score      engine.ScoreDetails     `json:"score"`      // Financial fitness score for the plan
	Insight    string                  `json:"insight"`    // Personalized summary text
	Projection []engine.ProjectedMonth `json:"projection"` // Wealth projection for the plan's savings
	MoodImpact MoodImpact              `json:"moodImpact"` // Effect of the mood compared to a balanced one
}

// MoodImpact quantifies what the current mood does to long term wealth
// compared to the same inputs with the "Balanced" mood.
type MoodImpact struct {
	MonthlyDelta   decimal.Decimal `json:"monthlyDelta" example:"5000"`       // Monthly savings delta against the balanced plan
	ProjectedDelta decimal.Decimal `json:"projectedDelta" example:"61891.55"` // Wealth after 12 months of investing the absolute delta
}

type ReportResponse struct {
	Data  *Report `json:"data"`  // The report for the requested inputs
	Error *string `json:"error"` // The error, if any occurred
}

// newReport runs the full engine pipeline for one set of inputs.
func newReport(r PlanRequest) Report {
	plan := engine.NewPlan(r.Income, r.FixedCommitments, r.Lifestyle, r.Mood)
	details := engine.Score(r.Income, plan.Savings, plan.Necessities)

	impact := MoodImpact{
		MonthlyDelta:   decimal.Zero,
		ProjectedDelta: decimal.Zero,
	}

	balanced := engine.NewPlan(r.Income, r.FixedCommitments, r.Lifestyle, "Balanced")
	delta := plan.Savings.Sub(balanced.Savings)
	if !delta.IsZero() {
		projection := engine.Project(delta.Abs(), 12)
		impact.MonthlyDelta = delta
		impact.ProjectedDelta = projection[len(projection)-1].Nominal
	}

	return Report{
		Plan:       plan,
		Score:      details,
		Insight:    engine.Narrate(r.Lifestyle, details, plan, r.Income),
		Projection: engine.Project(plan.Savings, r.ProjectionMonths),
		MoodImpact: impact,
	}
}
