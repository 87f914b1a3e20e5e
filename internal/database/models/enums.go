package models

// DutyType defines the categories of on-call duty assignments
type DutyType string

const (
	DutyTypeWeekend    DutyType = "weekend"
	DutyTypeLateShift  DutyType = "late_shift"
	DutyTypeEarlyShift DutyType = "early_shift"
)

// IsValid checks if the DutyType is valid
func (d DutyType) IsValid() bool {
	switch d {
	case DutyTypeWeekend, DutyTypeLateShift, DutyTypeEarlyShift:
		return true
	}
	return false
}

// ShiftTypes returns the schedule-entry shift types that qualify a user as a
// candidate for this duty type
func (d DutyType) ShiftTypes() []ShiftType {
	switch d {
	case DutyTypeWeekend:
		return []ShiftType{ShiftTypeNormal, ShiftTypeWeekend}
	case DutyTypeLateShift:
		return []ShiftType{ShiftTypeLate}
	case DutyTypeEarlyShift:
		return []ShiftType{ShiftTypeEarly}
	}
	return nil
}

// ShiftType defines the types of shifts on schedule entries
type ShiftType string

const (
	ShiftTypeNormal  ShiftType = "normal"
	ShiftTypeEarly   ShiftType = "early"
	ShiftTypeLate    ShiftType = "late"
	ShiftTypeWeekend ShiftType = "weekend"
)

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeNormal, ShiftTypeEarly, ShiftTypeLate, ShiftTypeWeekend:
		return true
	}
	return false
}

// AvailabilityStatus defines the availability states of a schedule entry
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityTentative   AvailabilityStatus = "tentative"
)

// ActivityType defines what a schedule entry represents
type ActivityType string

const (
	ActivityWork     ActivityType = "work"
	ActivityVacation ActivityType = "vacation"
	ActivitySick     ActivityType = "sick"
	ActivityTraining ActivityType = "training"
)

// ImportState is the closed set of holiday-import job states.
// Pending is the only non-terminal state; completed and failed are both
// terminal and re-importable.
type ImportState string

const (
	ImportStatePending   ImportState = "pending"
	ImportStateCompleted ImportState = "completed"
	ImportStateFailed    ImportState = "failed"
)

// IsValid checks if the ImportState is valid
func (s ImportState) IsValid() bool {
	switch s {
	case ImportStatePending, ImportStateCompleted, ImportStateFailed:
		return true
	}
	return false
}

// IsTerminal reports whether a job in this state can be superseded by a new import
func (s ImportState) IsTerminal() bool {
	return s == ImportStateCompleted || s == ImportStateFailed
}
