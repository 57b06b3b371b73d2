package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile is a named set of budget inputs that can be turned into a full
// financial report at any time. Profiles are the only persisted resource,
// all calculations on top of them are stateless.
type Profile struct {
	DefaultModel
	Name             string          `gorm:"uniqueIndex"`
	Note             string
	Income           decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monthly income
	FixedCommitments decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Fixed monthly commitments like rent
	Lifestyle        string          // Lifestyle the allocation rule is chosen by
	Mood             string          // Current financial mood
}

func (p Profile) Self() string {
	return "Profile"
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)
	p.Lifestyle = strings.TrimSpace(p.Lifestyle)
	p.Mood = strings.TrimSpace(p.Mood)

	return nil
}

// AfterSave rejects amounts the calculation engine defines degenerate
// results for. A saved profile is supposed to produce a usable report.
func (p *Profile) AfterSave(_ *gorm.DB) error {
	if p.Income.IsNegative() {
		return ErrProfileIncomeNegative
	}

	if p.FixedCommitments.IsNegative() {
		return ErrProfileCommitmentsNegative
	}

	return nil
}
