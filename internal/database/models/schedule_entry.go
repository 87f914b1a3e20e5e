package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is a day of a member's shift plan. The roster UI writes these;
// the coverage analyzer only reads them. Entries count as scheduled work when
// they are available and of activity type work.
type ScheduleEntry struct {
	BaseModel
	TeamID             uuid.UUID          `json:"team_id" gorm:"type:uuid;not null;index:idx_schedule_team_date" validate:"required"`
	ProfileID          uuid.UUID          `json:"profile_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date               time.Time          `json:"date" gorm:"type:date;not null;index:idx_schedule_team_date" validate:"required"`
	ShiftType          ShiftType          `json:"shift_type" gorm:"type:varchar(20);not null" validate:"required"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status" gorm:"type:varchar(20);not null;default:'available'"`
	ActivityType       ActivityType       `json:"activity_type" gorm:"type:varchar(20);not null;default:'work'"`

	// Relationships
	Team    Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Profile Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// IsScheduledWork reports whether the entry counts toward staffing coverage
func (e *ScheduleEntry) IsScheduledWork() bool {
	return e.AvailabilityStatus == AvailabilityAvailable && e.ActivityType == ActivityWork
}
