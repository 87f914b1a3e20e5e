package models

// Profile carries the display data of a staff member. User provisioning and
// authentication live outside this service; profiles are read-only here.
type Profile struct {
	BaseModel
	FullName string `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Initials string `json:"initials" gorm:"size:5;not null" validate:"required,min=1,max=5"`
	Email    string `json:"email" gorm:"size:100;uniqueIndex" validate:"omitempty,email"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
