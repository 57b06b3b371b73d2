// Package engine implements the calculation core for Core Flow: budget
// allocation by lifestyle, mood based reallocation, wealth projection and
// financial fitness scoring.
//
// All functions are pure and total. Every input, including degenerate ones
// like a non-positive income or an unknown lifestyle, has a defined result,
// so callers never need error handling for calculations.
package engine

import "github.com/shopspring/decimal"

// LifestyleRule defines the fraction of income that goes to each budget
// category for one lifestyle.
type LifestyleRule struct {
	Necessities decimal.Decimal `json:"necessities" example:"0.5"` // Fraction of income for necessities
	Wants       decimal.Decimal `json:"wants" example:"0.3"`       // Fraction of income for wants
	Savings     decimal.Decimal `json:"savings" example:"0.2"`     // Fraction of income for savings
}

// DefaultLifestyle is the rule used when an unknown lifestyle is requested.
const DefaultLifestyle = "Working Professional"

// LifestyleRules maps every supported lifestyle to its allocation rule.
//
// The fractions of a rule are not required to sum to 1. The shipped rules
// all do, but a rule that deliberately over- or under-allocates income is
// permitted.
var LifestyleRules = map[string]LifestyleRule{
	"Student": {
		Necessities: decimal.NewFromFloat(0.50),
		Wants:       decimal.NewFromFloat(0.35),
		Savings:     decimal.NewFromFloat(0.15),
	},
	"Working Professional": {
		Necessities: decimal.NewFromFloat(0.50),
		Wants:       decimal.NewFromFloat(0.30),
		Savings:     decimal.NewFromFloat(0.20),
	},
	"Freelancer": {
		Necessities: decimal.NewFromFloat(0.45),
		Wants:       decimal.NewFromFloat(0.25),
		Savings:     decimal.NewFromFloat(0.30),
	},
	"Homemaker": {
		Necessities: decimal.NewFromFloat(0.60),
		Wants:       decimal.NewFromFloat(0.25),
		Savings:     decimal.NewFromFloat(0.15),
	},
}

// MoodModifiers maps every supported financial mood to the fraction of
// income that is shifted from Savings to Wants. A negative modifier moves
// money from Wants to Savings. Unknown moods shift nothing.
var MoodModifiers = map[string]decimal.Decimal{
	"Disciplined": decimal.NewFromFloat(-0.10),
	"Splurge":     decimal.NewFromFloat(0.10),
	"Balanced":    decimal.Zero,
}

// Assumed market rates for wealth projections.
var (
	AnnualReturnRate    = decimal.NewFromFloat(0.07)
	AnnualInflationRate = decimal.NewFromFloat(0.06)
)

var (
	one                 = decimal.NewFromInt(1)
	hundred             = decimal.NewFromInt(100)
	monthsPerYear       = decimal.NewFromInt(12)
	emergencyFundMonths = decimal.NewFromInt(3)
)
