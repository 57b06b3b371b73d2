package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/coreflow-app/backend/internal/controllers/v1"
	"github.com/coreflow-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestScenarioOptions() {
	tests := []string{
		"http://example.com/v1/scenarios/what-if",
		"http://example.com/v1/scenarios/splurge",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestWhatIfMovesWantsToSavings() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios/what-if", v1.WhatIfRequest{
		Income:            decimal.NewFromInt(50000),
		FixedCommitments:  decimal.NewFromInt(15000),
		Lifestyle:         "Working Professional",
		Mood:              "Balanced",
		SavingsAdjustment: decimal.NewFromFloat(0.05),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WhatIfResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	scenario := *response.Data

	assert.True(suite.T(), scenario.MonthlySavings.Equal(decimal.NewFromInt(12500)), "Savings are %s", scenario.MonthlySavings)
	assert.True(suite.T(), scenario.MonthlyWants.Equal(decimal.NewFromInt(12500)), "Wants are %s", scenario.MonthlyWants)
	assert.True(suite.T(), scenario.SavingsDelta.Equal(decimal.NewFromInt(2500)))
	assert.True(suite.T(), scenario.WantsDelta.Equal(decimal.NewFromInt(-2500)))

	// Saving more now is worth more in a year
	assert.True(suite.T(), scenario.ProjectedWealthDelta.IsPositive())
	assert.True(suite.T(), scenario.ProjectedWealth.GreaterThan(scenario.MonthlySavings.Mul(decimal.NewFromInt(12))))
}

func (suite *TestSuiteStandard) TestWhatIfClampsAtZero() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios/what-if", v1.WhatIfRequest{
		Income:            decimal.NewFromInt(50000),
		FixedCommitments:  decimal.NewFromInt(15000),
		Lifestyle:         "Working Professional",
		Mood:              "Balanced",
		SavingsAdjustment: decimal.NewFromFloat(-0.5),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WhatIfResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	scenario := *response.Data

	// The full adjustment would push savings to -15000, the scenario
	// stops at zero
	assert.True(suite.T(), scenario.MonthlySavings.IsZero(), "Savings are %s", scenario.MonthlySavings)
	assert.True(suite.T(), scenario.SavingsDelta.Equal(decimal.NewFromInt(-10000)))
	assert.True(suite.T(), scenario.MonthlyWants.Equal(decimal.NewFromInt(40000)), "Wants are %s", scenario.MonthlyWants)
	assert.True(suite.T(), scenario.ProjectedWealth.IsZero())
	assert.True(suite.T(), scenario.ProjectedWealthDelta.IsNegative())
}

func (suite *TestSuiteStandard) TestSplurge() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios/splurge", `{ "amount": 1000, "durationMonths": 60 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplurgeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 60, response.Data.DurationMonths)

	// 60000 in contributions plus compounding
	assert.True(suite.T(), response.Data.LostWealth.GreaterThan(decimal.NewFromInt(60000)), "Lost wealth is %s", response.Data.LostWealth)
}

// TestSplurgeDefaultDuration verifies that a splurge without a duration is
// projected for five years.
func (suite *TestSuiteStandard) TestSplurgeDefaultDuration() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios/splurge", `{ "amount": 1000 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplurgeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 60, response.Data.DurationMonths)
}

func (suite *TestSuiteStandard) TestSplurgeZeroAmount() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios/splurge", `{ "amount": 0 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SplurgeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.LostWealth.IsZero())
}

func (suite *TestSuiteStandard) TestScenarioInvalidRequests() {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"What-if broken JSON", "http://example.com/v1/scenarios/what-if", `{ broken`},
		{"What-if empty body", "http://example.com/v1/scenarios/what-if", ""},
		{"Splurge broken JSON", "http://example.com/v1/scenarios/splurge", `{ broken`},
		{"Splurge duration zero", "http://example.com/v1/scenarios/splurge", `{ "amount": 1000, "durationMonths": 0 }`},
		{"Splurge duration too long", "http://example.com/v1/scenarios/splurge", `{ "amount": 1000, "durationMonths": 1300 }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
