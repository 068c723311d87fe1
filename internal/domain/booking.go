package domain

import (
	"time"
)

// BookingStatus represents the status of a swap booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a driver's battery-swap appointment at a station.
//
// Legal transitions:
//
//	pending   -> confirmed  (staff check-in)
//	pending   -> cancelled  (driver, before check-in)
//	confirmed -> cancelled  (driver, only while not checked in)
//	confirmed -> completed  (staff, emits a SwapTransaction)
//
// completed and cancelled are terminal.
type Booking struct {
	ID                 string        `json:"id" gorm:"primaryKey"`
	UserID             string        `json:"user_id" gorm:"index"`
	VehicleID          string        `json:"vehicle_id" gorm:"index"`
	StationID          string        `json:"station_id" gorm:"index"`
	ScheduledAt        time.Time     `json:"scheduled_at" gorm:"index"`
	Status             BookingStatus `json:"status" gorm:"index"`
	CheckedInAt        *time.Time    `json:"checked_in_at,omitempty"`
	CheckedInByStaffID string        `json:"checked_in_by_staff_id,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`

	User    *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Station *SwapStation `json:"station,omitempty" gorm:"foreignKey:StationID"`
}

// IsTerminal reports whether no further transition is permitted.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// CanCheckIn reports whether staff may check the driver in.
func (b *Booking) CanCheckIn() bool {
	if b.IsTerminal() || b.CheckedInAt != nil {
		return false
	}
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanBeCancelled reports whether the driver may still cancel. Check-in
// closes the cancellation window.
func (b *Booking) CanBeCancelled() bool {
	if b.IsTerminal() || b.CheckedInAt != nil {
		return false
	}
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// CanComplete reports whether the swap can be executed.
func (b *Booking) CanComplete() bool {
	return b.Status == BookingStatusConfirmed
}
