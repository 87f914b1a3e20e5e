package models

import (
	"time"

	"github.com/google/uuid"
)

// DutyAssignment is one on-call slot for a team, date and duty type. Several
// rows may exist for the same (team, date, duty type) key: one per
// simultaneous duty holder (primary plus backups). Week number and year are
// denormalized from the date for range queries.
type DutyAssignment struct {
	BaseModel
	TeamID       uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index:idx_duty_team_week" validate:"required"`
	Date         time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	DutyType     DutyType   `json:"duty_type" gorm:"type:varchar(20);not null" validate:"required"`
	ProfileID    *uuid.UUID `json:"profile_id" gorm:"type:uuid;index"`
	IsSubstitute bool       `json:"is_substitute" gorm:"not null;default:false"`
	Region       string     `json:"region" gorm:"size:100"` // free-text responsibility region
	WeekNumber   int        `json:"week_number" gorm:"not null;index:idx_duty_team_week"`
	Year         int        `json:"year" gorm:"not null;index:idx_duty_team_week"`

	// Relationships
	Team    Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}

// TableName returns the table name for DutyAssignment
func (DutyAssignment) TableName() string {
	return "duty_assignments"
}
