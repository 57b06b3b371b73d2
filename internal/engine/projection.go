package engine

import "github.com/shopspring/decimal"

// ProjectedMonth is a single month in a wealth projection.
type ProjectedMonth struct {
	Month   int             `json:"month" example:"1"`         // Month number, starting at 1
	Nominal decimal.Decimal `json:"nominal" example:"1005.83"` // Projected wealth
	Real    decimal.Decimal `json:"real" example:"1000.83"`    // Projected wealth in today's money
}

// Project compounds a monthly savings amount over the given number of
// months using the assumed annual return rate. The contribution is added
// before the month's interest is applied. The real value discounts the
// balance by the inflation accumulated since the start of the projection.
//
// The series always has exactly months entries. A non-positive savings
// amount yields a series of zeroes, not an error. Nominal and real values
// are rounded to two decimal places, the running balance is not.
func Project(monthlySavings decimal.Decimal, months int) []ProjectedMonth {
	if months < 0 {
		months = 0
	}

	series := make([]ProjectedMonth, 0, months)

	if !monthlySavings.IsPositive() {
		for month := 1; month <= months; month++ {
			series = append(series, ProjectedMonth{Month: month})
		}

		return series
	}

	monthlyReturn := AnnualReturnRate.Div(monthsPerYear)
	monthlyInflation := one.Add(AnnualInflationRate.Div(monthsPerYear))

	wealth := decimal.Zero
	discount := one

	for month := 1; month <= months; month++ {
		wealth = wealth.Add(monthlySavings)
		wealth = wealth.Add(wealth.Mul(monthlyReturn))

		discount = discount.Mul(monthlyInflation)

		series = append(series, ProjectedMonth{
			Month:   month,
			Nominal: wealth.Round(2),
			Real:    wealth.Div(discount).Round(2),
		})
	}

	return series
}
