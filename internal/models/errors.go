package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Profile errors
var (
	ErrProfileNameNotUnique       = errors.New("the profile name must be unique")
	ErrProfileIncomeNegative      = errors.New("the income of a profile must not be negative")
	ErrProfileCommitmentsNegative = errors.New("the fixed commitments of a profile must not be negative")
)
