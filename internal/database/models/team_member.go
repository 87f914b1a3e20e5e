package models

import (
	"github.com/google/uuid"
)

// TeamMember links a profile to a team
type TeamMember struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_team_profile" validate:"required"`
	ProfileID uuid.UUID `json:"profile_id" gorm:"type:uuid;not null;index;uniqueIndex:ux_team_profile" validate:"required"`

	// Relationships
	Team    Team    `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Profile Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
