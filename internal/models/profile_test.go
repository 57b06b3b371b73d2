package models_test

import (
	"testing"

	"github.com/coreflow-app/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProfileCreate() {
	profile := models.Profile{
		Name:             "Morre",
		Income:           decimal.NewFromInt(50000),
		FixedCommitments: decimal.NewFromInt(15000),
		Lifestyle:        "Working Professional",
		Mood:             "Balanced",
	}

	err := models.DB.Create(&profile).Error
	suite.Require().Nil(err)
	suite.Assert().NotEqual(profile.ID.String(), "00000000-0000-0000-0000-000000000000")

	var reloaded models.Profile
	err = models.DB.First(&reloaded, profile.ID).Error
	suite.Require().Nil(err)

	suite.Assert().True(reloaded.Income.Equal(profile.Income), "Income is %s, should be %s", reloaded.Income, profile.Income)
	suite.Assert().Equal("Working Professional", reloaded.Lifestyle)
}

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	profile := models.Profile{
		Name:      " Morre ",
		Note:      "  needs tidying\t",
		Lifestyle: " Freelancer ",
		Mood:      " Balanced ",
	}

	err := models.DB.Create(&profile).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Morre", profile.Name)
	suite.Assert().Equal("needs tidying", profile.Note)
	suite.Assert().Equal("Freelancer", profile.Lifestyle)
	suite.Assert().Equal("Balanced", profile.Mood)
}

func (suite *TestSuiteStandard) TestProfileNameUnique() {
	err := models.DB.Create(&models.Profile{Name: "Unique"}).Error
	suite.Require().Nil(err)

	err = models.DB.Create(&models.Profile{Name: "Unique"}).Error
	suite.Assert().ErrorIs(err, models.ErrProfileNameNotUnique)
}

func (suite *TestSuiteStandard) TestProfileAmountsNotNegative() {
	tests := []struct {
		name    string
		profile models.Profile
		err     error
	}{
		{
			"Negative income",
			models.Profile{Name: "Broke", Income: decimal.NewFromInt(-1)},
			models.ErrProfileIncomeNegative,
		},
		{
			"Negative commitments",
			models.Profile{Name: "Odd rent", FixedCommitments: decimal.NewFromInt(-500)},
			models.ErrProfileCommitmentsNegative,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.profile).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProfileNotFoundError() {
	err := models.DB.First(&models.Profile{}, "id = ?", "4e743e94-6a4b-44d6-aba5-d77c87103ff7").Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
