package models

import (
	"time"

	"github.com/google/uuid"
)

// Holiday is one public-holiday row. Centrally imported holidays have a nil
// owner. Within a country and year the same (date, name) may repeat once per
// region code; a nil region code means the holiday applies everywhere, which
// is distinct from any explicit region list.
type Holiday struct {
	BaseModel
	CountryCode string     `json:"country_code" gorm:"size:2;not null;index:idx_holiday_country_year" validate:"required,len=2"`
	Year        int        `json:"year" gorm:"not null;index:idx_holiday_country_year" validate:"required,min=2000,max=2100"`
	Date        time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Name        string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	RegionCode  *string    `json:"region_code" gorm:"size:10;index"`
	IsPublic    bool       `json:"is_public" gorm:"not null;default:true"`
	OwnerID     *uuid.UUID `json:"owner_id" gorm:"type:uuid"`
}

// TableName returns the table name for Holiday
func (Holiday) TableName() string {
	return "holidays"
}
