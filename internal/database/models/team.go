package models

// Team represents a team whose duty roster and coverage are managed here
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:40;not null;uniqueIndex" validate:"required,min=1,max=40"`
	DisplayName string `json:"display_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Location    string `json:"location" gorm:"size:10"` // subdivision code scoping holidays, e.g. BW; matches Holiday.RegionCode

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
