package v1

import (
	"fmt"

	"github.com/coreflow-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all values of a Profile that users can change.
type ProfileEditable struct {
	Name             string          `json:"name" example:"Morre" default:""`                          // Name of the profile, must be unique
	Note             string          `json:"note" example:"My main budget" default:""`                 // Free text note
	Income           decimal.Decimal `json:"income" example:"50000" default:"0"`                       // Monthly income
	FixedCommitments decimal.Decimal `json:"fixedCommitments" example:"15000" default:"0"`             // Fixed monthly commitments like rent
	Lifestyle        string          `json:"lifestyle" example:"Working Professional" default:""`      // Lifestyle the allocation rule is chosen by
	Mood             string          `json:"mood" example:"Balanced" default:""`                       // Current financial mood
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:             editable.Name,
		Note:             editable.Note,
		Income:           editable.Income,
		FixedCommitments: editable.FixedCommitments,
		Lifestyle:        editable.Lifestyle,
		Mood:             editable.Mood,
	}
}

// planRequest returns the engine inputs stored in the profile.
func (p Profile) planRequest(months int) PlanRequest {
	return PlanRequest{
		Income:           p.Income,
		FixedCommitments: p.FixedCommitments,
		Lifestyle:        p.Lifestyle,
		Mood:             p.Mood,
		ProjectionMonths: months,
	}
}

type ProfileListResponse struct {
	Data       []Profile   `json:"data"`                                                          // List of Profiles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProfileCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProfileResponse `json:"data"`                                                          // List of created Profiles
}

func (p *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProfileResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Profile
	Data  *Profile `json:"data"`                                                          // The Profile data, if creation was successful
}

type ProfileLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profiles/95685c82-53c6-455d-b235-f49960b73b21"`      // The profile itself
	Plan string `json:"plan" example:"https://example.com/api/v1/profiles/95685c82-53c6-455d-b235-f49960b73b21/plan"` // The computed report for the profile
}

// Profile is the API representation of a Profile.
type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.ContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:             model.Name,
			Note:             model.Note,
			Income:           model.Income,
			FixedCommitments: model.FixedCommitments,
			Lifestyle:        model.Lifestyle,
			Mood:             model.Mood,
		},
		Links: ProfileLinks{
			Self: fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			Plan: fmt.Sprintf("%s/v1/profiles/%s/plan", url, model.ID),
		},
	}
}

// ProfileQueryFilter contains the fields that Profiles can be filtered with.
type ProfileQueryFilter struct {
	Name      string `form:"name" filterField:"false"`   // By name. Supports * globs, a plain string is an exact match
	Lifestyle string `form:"lifestyle"`                  // By lifestyle
	Mood      string `form:"mood"`                       // By mood
	Search    string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first Profile returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of Profiles to return. Defaults to 50.
}

func (f ProfileQueryFilter) model() models.Profile {
	return models.Profile{
		Lifestyle: f.Lifestyle,
		Mood:      f.Mood,
	}
}
