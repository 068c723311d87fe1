package domain

import (
	"math"
	"time"
)

// SwapTransaction is the immutable record of one battery exchange. It is
// created exactly once, when a confirmed booking is completed, in the same
// storage transaction that marks the booking completed.
type SwapTransaction struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	BookingID           string    `json:"booking_id" gorm:"uniqueIndex"`
	UserID              string    `json:"user_id" gorm:"index"`
	StationID           string    `json:"station_id" gorm:"index"`
	StaffID             string    `json:"staff_id" gorm:"index"`
	OldBatteryID        string    `json:"old_battery_id"`
	NewBatteryID        string    `json:"new_battery_id"`
	SwapStartedAt       time.Time `json:"swap_started_at"`
	SwapCompletedAt     time.Time `json:"swap_completed_at"`
	SwapDurationMinutes int       `json:"swap_duration_minutes"`
	Amount              int64     `json:"amount"` // Minor currency units
	Currency            string    `json:"currency"`
	CreatedAt           time.Time `json:"created_at"`
}

// SwapDurationMinutes rounds the elapsed swap time to whole minutes.
func SwapDurationMinutes(startedAt, completedAt time.Time) int {
	return int(math.Round(completedAt.Sub(startedAt).Minutes()))
}
