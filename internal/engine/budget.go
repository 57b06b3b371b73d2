package engine

import "github.com/shopspring/decimal"

// Plan is a computed monthly budget split. All amounts are in the same
// currency unit as the income they were computed from.
type Plan struct {
	Necessities      decimal.Decimal `json:"necessities" example:"25000"`     // Amount for necessities
	Wants            decimal.Decimal `json:"wants" example:"15000"`           // Amount for discretionary spending
	Savings          decimal.Decimal `json:"savings" example:"10000"`         // Amount for savings
	FixedCommitments decimal.Decimal `json:"fixedCommitments" example:"15000"` // Fixed monthly commitments like rent
	FlexNecessities  decimal.Decimal `json:"flexNecessities" example:"10000"`  // Necessities remaining after fixed commitments
}

// Allocate splits income according to the rule for the given lifestyle.
//
// A non-positive income yields an all-zero plan, an unknown lifestyle falls
// back to the DefaultLifestyle rule. The category amounts are independent
// products of income and rule fraction, they only sum to income when the
// rule's fractions sum to 1. Fixed commitments exceeding the necessities
// allocation are not a deficit here, callers can compare the two fields to
// detect overcommitment.
func Allocate(income, fixedCommitments decimal.Decimal, lifestyle string) Plan {
	if !income.IsPositive() {
		return Plan{}
	}

	rule, ok := LifestyleRules[lifestyle]
	if !ok {
		rule = LifestyleRules[DefaultLifestyle]
	}

	necessities := income.Mul(rule.Necessities)

	flex := necessities.Sub(fixedCommitments)
	if flex.IsNegative() {
		flex = decimal.Zero
	}

	return Plan{
		Necessities:      necessities,
		Wants:            income.Mul(rule.Wants),
		Savings:          income.Mul(rule.Savings),
		FixedCommitments: fixedCommitments,
		FlexNecessities:  flex,
	}
}

// ApplyMood shifts funds between Wants and Savings according to the mood.
//
// The shifted amount is income multiplied by the mood's modifier. When the
// shift pushes a category below zero, the deficit is transferred to the
// other category before the field is zeroed: first a Wants deficit into
// Savings, then a Savings deficit into Wants. The two transfers must run
// in this order, clamping both fields independently would break the
// zero-sum property of the shift. Necessities and commitments pass through
// unchanged.
func ApplyMood(plan Plan, income decimal.Decimal, mood string) Plan {
	shift := income.Mul(MoodModifiers[mood])

	plan.Wants = plan.Wants.Add(shift)
	plan.Savings = plan.Savings.Sub(shift)

	if plan.Wants.IsNegative() {
		plan.Savings = plan.Savings.Add(plan.Wants)
		plan.Wants = decimal.Zero
	}

	if plan.Savings.IsNegative() {
		plan.Wants = plan.Wants.Add(plan.Savings)
		plan.Savings = decimal.Zero
	}

	return plan
}

// NewPlan computes the final budget plan for a full set of user inputs by
// allocating per lifestyle and then applying the mood adjustment.
func NewPlan(income, fixedCommitments decimal.Decimal, lifestyle, mood string) Plan {
	return ApplyMood(Allocate(income, fixedCommitments, lifestyle), income, mood)
}
