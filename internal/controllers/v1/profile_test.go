package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/coreflow-app/backend/internal/controllers/v1"
	"github.com/coreflow-app/backend/internal/models"
	"github.com/coreflow-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfile(t *testing.T, p v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProfileEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ProfileCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ProfileResponse{}
}

// TestProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfilesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProfile(t, v1.ProfileEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/profiles", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProfileListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestProfilesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProfilesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Profiles endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Profile with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Profile exists", createTestProfile(suite.T(), v1.ProfileEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/profiles", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesListOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestProfilesCreate() {
	response := createTestProfile(suite.T(), v1.ProfileEditable{
		Name:             "Morre",
		Note:             "My plan for the new job",
		Income:           decimal.NewFromInt(50000),
		FixedCommitments: decimal.NewFromInt(15000),
		Lifestyle:        "Working Professional",
		Mood:             "Balanced",
	})

	require.NotNil(suite.T(), response.Data)
	profile := *response.Data

	assert.Equal(suite.T(), "Morre", profile.Name)
	assert.True(suite.T(), profile.Income.Equal(decimal.NewFromInt(50000)))
	assert.NotEqual(suite.T(), uuid.Nil, profile.ID)

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s", profile.ID), profile.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s/plan", profile.ID), profile.Links.Plan)
}

func (suite *TestSuiteStandard) TestProfilesCreateTrimsWhitespace() {
	response := createTestProfile(suite.T(), v1.ProfileEditable{
		Name: " Padded name ",
		Note: " Padded note ",
	})

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Padded name", response.Data.Name)
	assert.Equal(suite.T(), "Padded note", response.Data.Note)
}

func (suite *TestSuiteStandard) TestProfilesCreateDuplicateName() {
	createTestProfile(suite.T(), v1.ProfileEditable{Name: "Unique name"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/profiles", []v1.ProfileEditable{{Name: "Unique name"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ProfileCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Equal(suite.T(), models.ErrProfileNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestProfilesCreateNegativeAmounts() {
	tests := []struct {
		name    string
		profile v1.ProfileEditable
		err     error
	}{
		{"Negative income", v1.ProfileEditable{Income: decimal.NewFromInt(-1)}, models.ErrProfileIncomeNegative},
		{"Negative commitments", v1.ProfileEditable{FixedCommitments: decimal.NewFromInt(-500)}, models.ErrProfileCommitmentsNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			tt.profile.Name = uuid.NewString()

			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", []v1.ProfileEditable{tt.profile})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ProfileCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			require.NotNil(t, response.Data[0].Error)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

// TestProfilesCreateMixed verifies that a mixed batch returns the created
// resources next to the errors and the highest status code wins.
func (suite *TestSuiteStandard) TestProfilesCreateMixed() {
	body := []v1.ProfileEditable{
		{Name: "Mixed batch"},
		{Name: "Mixed batch"},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/profiles", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ProfileCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestProfilesCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Broken JSON", `{ broken`},
		{"Not an array", `{ "name": "Not an array" }`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET existing Profile", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET no Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET invalid ID", "69b5", http.StatusBadRequest, http.MethodGet},
		{"PATCH invalid ID", "NotAUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE invalid ID", "NotAUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetFilter() {
	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:      "Morre's budget",
		Note:      "The new job",
		Lifestyle: "Working Professional",
		Mood:      "Balanced",
	})

	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:      "Household budget",
		Lifestyle: "Homemaker",
		Mood:      "Balanced",
	})

	_ = createTestProfile(suite.T(), v1.ProfileEditable{
		Name:      "Freelance gigs",
		Note:      "Everything around the side job",
		Lifestyle: "Freelancer",
		Mood:      "Disciplined",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name with glob", "name=*budget", 2},
		{"Name exact match", "name=Freelance gigs", 1},
		{"Name no match", "name=Nonexistent*", 0},
		{"Lifestyle", "lifestyle=Homemaker", 1},
		{"Mood", "mood=Balanced", 2},
		{"Lifestyle and mood", "lifestyle=Freelancer&mood=Balanced", 0},
		{"Search in notes", "search=job", 2},
		{"Search is case insensitive", "search=HOUSEHOLD", 1},
		{"No filter returns everything", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProfileListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesPagination() {
	for i := 0; i < 5; i++ {
		createTestProfile(suite.T(), v1.ProfileEditable{Name: fmt.Sprintf("Profile %d", i)})
	}

	tests := []struct {
		name   string
		query  string
		count  int
		offset uint
		limit  int
		total  int64
	}{
		{"All profiles", "", 5, 0, 50, 5},
		{"Limit", "limit=2", 2, 0, 2, 5},
		{"Offset", "offset=3", 2, 3, 50, 5},
		{"Offset and limit", "offset=2&limit=2", 2, 2, 2, 5},
		{"Offset beyond the end", "offset=10", 0, 10, 50, 5},
		{"Limit of zero", "limit=0", 0, 0, 0, 5},
		{"Negative limit returns everything", "limit=-1", 5, 0, -1, 5},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProfileListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)

			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.count, response.Pagination.Count)
			assert.Equal(t, tt.offset, response.Pagination.Offset)
			assert.Equal(t, tt.limit, response.Pagination.Limit)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{
		Name:   "Before the update",
		Income: decimal.NewFromInt(30000),
	})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"name": "After the update",
		"mood": "Splurge",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "After the update", response.Data.Name)
	assert.Equal(suite.T(), "Splurge", response.Data.Mood)

	// Fields that were not part of the request are untouched
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(30000)), "Income is %s", response.Data.Income)
}

func (suite *TestSuiteStandard) TestProfilesUpdateInvalid() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ broken`},
		{"Empty body", ""},
		{"Negative income", map[string]any{"income": -100}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, p.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesDelete() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Resource is gone
	r = test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProfilesGetPlan() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{
		Name:             "New job",
		Income:           decimal.NewFromInt(50000),
		FixedCommitments: decimal.NewFromInt(15000),
		Lifestyle:        "Working Professional",
		Mood:             "Balanced",
	})

	r := test.Request(suite.T(), http.MethodGet, p.Data.Links.Plan, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	report := *response.Data

	assert.True(suite.T(), report.Plan.Savings.Equal(decimal.NewFromInt(10000)), "Savings are %s", report.Plan.Savings)
	assert.Equal(suite.T(), "B", report.Score.Grade)
	assert.Len(suite.T(), report.Projection, 12)
}

func (suite *TestSuiteStandard) TestProfilesGetPlanMonths() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{
		Income:    decimal.NewFromInt(50000),
		Lifestyle: "Student",
		Mood:      "Balanced",
	})

	tests := []struct {
		name   string
		query  string
		status int
		months int
	}{
		{"Default", "", http.StatusOK, 12},
		{"Explicit", "months=24", http.StatusOK, 24},
		{"Zero", "months=0", http.StatusBadRequest, 0},
		{"Negative", "months=-1", http.StatusBadRequest, 0},
		{"Too long", "months=1201", http.StatusBadRequest, 0},
		{"Not a number", "months=twelve", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?%s", p.Data.Links.Plan, tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.ReportResponse
				test.DecodeResponse(t, &r, &response)

				require.NotNil(t, response.Data)
				assert.Len(t, response.Data.Projection, tt.months)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesGetPlanNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/profiles/%s/plan", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
