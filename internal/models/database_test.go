package models_test

import (
	"github.com/coreflow-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidDSN() {
	err := models.Connect("/this/path/does/not/exist/database.db")
	suite.Assert().NotNil(err)
}

// TestGeneralErrorOnClosedDB verifies that database errors we cannot give
// advice for are replaced by the general error message.
func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.Create(&models.Profile{Name: "After close"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	// Reconnect so that TearDownTest has something to close
	suite.SetupTest()
}
