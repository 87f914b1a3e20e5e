package models

import (
	"time"
)

// HolidayImportStatus is the job record of one holiday import, identified by
// (country, year, region). At most one pending row may exist per identity; the
// orchestrator enforces this, not the caller. A pending row older than the
// import timeout is reclaimed to failed.
type HolidayImportStatus struct {
	BaseModel
	CountryCode   string      `json:"country_code" gorm:"size:2;not null;index:idx_import_identity" validate:"required,len=2"`
	Year          int         `json:"year" gorm:"not null;index:idx_import_identity" validate:"required,min=2000,max=2100"`
	RegionCode    *string     `json:"region_code" gorm:"size:10;index:idx_import_identity"`
	Status        ImportState `json:"status" gorm:"type:varchar(20);not null;index" validate:"required"`
	ImportedCount int         `json:"imported_count" gorm:"not null;default:0"`
	StartedAt     time.Time   `json:"started_at" gorm:"not null"`
	CompletedAt   *time.Time  `json:"completed_at"`
	ErrorMessage  string      `json:"error_message" gorm:"size:500"`
}

// TableName returns the table name for HolidayImportStatus
func (HolidayImportStatus) TableName() string {
	return "holiday_import_status"
}

// Age returns how long ago the job started
func (s *HolidayImportStatus) Age(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}
