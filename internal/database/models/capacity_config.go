package models

import (
	"github.com/google/uuid"
)

// CapacityRule holds the staffing thresholds shared by team and partnership
// configs. MaxStaffAllowed is optional; when set it must be >= MinStaffRequired.
type CapacityRule struct {
	MinStaffRequired  int    `json:"min_staff_required" gorm:"not null;default:1" validate:"required,min=1"`
	MaxStaffAllowed   *int   `json:"max_staff_allowed" validate:"omitempty,min=1"`
	AppliesToWeekends bool   `json:"applies_to_weekends" gorm:"not null;default:false"`
	Notes             string `json:"notes" gorm:"size:500" validate:"max=500"`
}

// TeamCapacityConfig is the single active staffing policy of a team
type TeamCapacityConfig struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	CapacityRule

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamCapacityConfig
func (TeamCapacityConfig) TableName() string {
	return "team_capacity_config"
}

// PartnershipCapacityConfig is the single active staffing policy shared by all
// member teams of a partnership
type PartnershipCapacityConfig struct {
	BaseModel
	PartnershipID uuid.UUID `json:"partnership_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	CapacityRule

	// Relationships
	Partnership Partnership `json:"partnership,omitempty" gorm:"foreignKey:PartnershipID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PartnershipCapacityConfig
func (PartnershipCapacityConfig) TableName() string {
	return "partnership_capacity_config"
}
