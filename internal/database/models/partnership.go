package models

import (
	"github.com/google/uuid"
)

// Partnership is a named group of teams sharing one staffing policy and a
// combined coverage calculation
type Partnership struct {
	BaseModel
	Name        string `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	DisplayName string `json:"display_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Location    string `json:"location" gorm:"size:10"`

	// Relationships
	Teams []PartnershipTeam `json:"teams,omitempty" gorm:"foreignKey:PartnershipID"`
}

// TableName returns the table name for Partnership
func (Partnership) TableName() string {
	return "partnerships"
}

// PartnershipTeam maps a partnership to one of its member teams
type PartnershipTeam struct {
	BaseModel
	PartnershipID uuid.UUID `json:"partnership_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_partnership_team" validate:"required"`
	TeamID        uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_partnership_team" validate:"required"`

	// Relationships
	Partnership Partnership `json:"partnership,omitempty" gorm:"foreignKey:PartnershipID;constraint:OnDelete:CASCADE"`
	Team        Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PartnershipTeam
func (PartnershipTeam) TableName() string {
	return "team_planning_partners"
}
