package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// amountPrinter formats monetary amounts in insight texts with thousands
// separators. Currency symbols are up to the presentation layer.
var amountPrinter = message.NewPrinter(language.English)

var (
	recommendedSavingsRate = decimal.NewFromFloat(0.20)
	wantsShareWarning      = decimal.NewFromFloat(0.35)
)

// Narrate builds a short personalized summary for a scored budget.
//
// The opening sentence reflects the grade tier, the second sentence gives
// the most relevant piece of advice. The advice rules are checked in order
// and the first matching rule wins:
//
//  1. Freelancers without a full emergency fund get fund advice.
//  2. A Wants share above 35% of income gets trimming advice.
//  3. A savings rate below the recommended 20% gets the concrete shortfall.
//  4. Everything else gets generic encouragement.
func Narrate(lifestyle string, details ScoreDetails, plan Plan, income decimal.Decimal) string {
	rate := formatPercent(details.SavingsRate, 1)

	var opening string
	switch details.Grade {
	case "A", "B":
		opening = fmt.Sprintf("As a %s, your financial discipline is impressive! A savings rate of %s puts you in a strong position. ", lifestyle, rate)
	case "C":
		opening = fmt.Sprintf("You're building a solid foundation as a %s. Your savings rate of %s is a good start. ", lifestyle, rate)
	default:
		opening = fmt.Sprintf("As a %s, your current budget needs attention. A savings rate of %s is a critical area to improve. ", lifestyle, rate)
	}

	wantsShare := decimal.Zero
	if income.IsPositive() {
		wantsShare = plan.Wants.Div(income)
	}

	var advice string
	switch {
	case lifestyle == "Freelancer" && details.EmergencyFundProgress.LessThan(one):
		advice = "For freelancers, a robust emergency fund is key; prioritize building 3-6 months of savings."

	case wantsShare.GreaterThan(wantsShareWarning):
		advice = fmt.Sprintf("The quickest way to boost your savings is to review your 'Wants' (currently at %s) and reallocate funds to your goals.", formatPercent(wantsShare, 0))

	case details.SavingsRate.LessThan(recommendedSavingsRate) && details.Grade != "A" && details.Grade != "B":
		shortfall := income.Mul(recommendedSavingsRate).Sub(plan.Savings)
		advice = amountPrinter.Sprintf("Consider boosting your monthly savings by just %d to hit the recommended 20%% target.", shortfall.Round(0).IntPart())

	default:
		advice = "Keep up the consistent effort to see significant long-term growth."
	}

	return opening + advice
}

// formatPercent renders a fraction as a percentage with the given number of
// decimal places.
func formatPercent(fraction decimal.Decimal, places int32) string {
	return fraction.Mul(hundred).StringFixed(places) + "%"
}
