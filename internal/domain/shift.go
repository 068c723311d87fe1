package domain

import (
	"time"
)

type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusAbsent    ShiftStatus = "absent"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// SelfServiceAllowed reports whether staff may set this status on their own
// shift. Admins may set any status.
func (s ShiftStatus) SelfServiceAllowed() bool {
	switch s {
	case ShiftStatusCompleted, ShiftStatusAbsent, ShiftStatusCancelled:
		return true
	}
	return false
}

func (s ShiftStatus) Valid() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusCompleted, ShiftStatusAbsent, ShiftStatusCancelled:
		return true
	}
	return false
}

// StaffShift is a staff member's work interval at a station. Non-cancelled
// shifts of the same staff member must never overlap.
type StaffShift struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	StaffID    string      `json:"staff_id" gorm:"index"`
	StationID  string      `json:"station_id" gorm:"index"`
	ShiftDate  string      `json:"shift_date" gorm:"index"` // UTC calendar date of ShiftStart
	ShiftStart time.Time   `json:"shift_start" gorm:"index"`
	ShiftEnd   time.Time   `json:"shift_end"`
	Status     ShiftStatus `json:"status" gorm:"index"`
	Notes      string      `json:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	Staff *User `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
}

// Overlaps tests the half-open interval [ShiftStart, ShiftEnd) against
// [start, end).
func (s *StaffShift) Overlaps(start, end time.Time) bool {
	return start.Before(s.ShiftEnd) && end.After(s.ShiftStart)
}

// CountsForOverlap reports whether the shift still occupies its interval.
// Cancelled shifts free the slot.
func (s *StaffShift) CountsForOverlap() bool {
	return s.Status != ShiftStatusCancelled
}

// DeriveShiftDate returns the UTC calendar date of a shift start. Both the
// create and update paths derive ShiftDate through here.
func DeriveShiftDate(shiftStart time.Time) string {
	return shiftStart.UTC().Format("2006-01-02")
}
