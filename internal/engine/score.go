package engine

import "github.com/shopspring/decimal"

// ScoreDetails describes the financial fitness of a budget.
type ScoreDetails struct {
	SavingsRate           decimal.Decimal `json:"savingsRate" example:"0.2"`                                                    // Savings as a fraction of income
	Grade                 string          `json:"grade" example:"B"`                                                            // Letter grade for the savings rate
	Label                 string          `json:"label" example:"👍"`                                                           // Display label for the grade
	Comment               string          `json:"comment" example:"Great job! You are on track with the recommended savings rate."` // Insight for the grade
	EmergencyFundProgress decimal.Decimal `json:"emergencyFundProgress" example:"0.13"`                                         // Progress towards a three month emergency fund, 0 to 1
}

// gradeBands are inclusive lower bounds on the savings rate, checked from
// the highest rate down. The first band the rate reaches wins, anything
// below the last band is an F.
var gradeBands = []struct {
	rate    decimal.Decimal
	grade   string
	label   string
	comment string
}{
	{decimal.NewFromFloat(0.25), "A", "💪", "Excellent! Your savings rate is exceptional."},
	{decimal.NewFromFloat(0.20), "B", "👍", "Great job! You are on track with the recommended savings rate."},
	{decimal.NewFromFloat(0.15), "C", "🙂", "Good start! Aiming for 20% will accelerate your goals."},
	{decimal.NewFromFloat(0.10), "D", "👀", "There's room for improvement. Try reallocating from 'Wants'."},
}

// Score grades a budget by its savings rate and reports the progress the
// monthly savings make towards a three month emergency fund.
//
// A non-positive income yields a savings rate of zero and a non-positive
// emergency fund goal yields zero progress, neither is an error. Progress
// is capped at 1.
func Score(income, savings, necessities decimal.Decimal) ScoreDetails {
	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = savings.Div(income)
	}

	details := ScoreDetails{
		SavingsRate: savingsRate,
		Grade:       "F",
		Label:       "💸",
		Comment:     "Warning! Your current savings rate is critically low.",
	}

	for _, band := range gradeBands {
		if savingsRate.GreaterThanOrEqual(band.rate) {
			details.Grade = band.grade
			details.Label = band.label
			details.Comment = band.comment

			break
		}
	}

	goal := necessities.Mul(emergencyFundMonths)
	if goal.IsPositive() {
		progress := savings.Div(goal)

		if progress.GreaterThan(one) {
			progress = one
		}

		if progress.IsNegative() {
			progress = decimal.Zero
		}

		details.EmergencyFundProgress = progress
	}

	return details
}
