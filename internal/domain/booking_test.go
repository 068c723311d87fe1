package domain

import (
	"testing"
	"time"
)

func TestBookingTransitions(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name        string
		booking     Booking
		canCheckIn  bool
		canCancel   bool
		canComplete bool
		terminal    bool
	}{
		{
			name:       "pending",
			booking:    Booking{Status: BookingStatusPending},
			canCheckIn: true,
			canCancel:  true,
		},
		{
			name:        "confirmed without check-in",
			booking:     Booking{Status: BookingStatusConfirmed},
			canCheckIn:  true,
			canCancel:   true,
			canComplete: true,
		},
		{
			name:        "confirmed and checked in",
			booking:     Booking{Status: BookingStatusConfirmed, CheckedInAt: &now},
			canComplete: true,
		},
		{
			name:     "completed",
			booking:  Booking{Status: BookingStatusCompleted, CheckedInAt: &now},
			terminal: true,
		},
		{
			name:     "cancelled",
			booking:  Booking{Status: BookingStatusCancelled},
			terminal: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.booking
			if got := b.CanCheckIn(); got != tc.canCheckIn {
				t.Errorf("CanCheckIn() = %v, want %v", got, tc.canCheckIn)
			}
			if got := b.CanBeCancelled(); got != tc.canCancel {
				t.Errorf("CanBeCancelled() = %v, want %v", got, tc.canCancel)
			}
			if got := b.CanComplete(); got != tc.canComplete {
				t.Errorf("CanComplete() = %v, want %v", got, tc.canComplete)
			}
			if got := b.IsTerminal(); got != tc.terminal {
				t.Errorf("IsTerminal() = %v, want %v", got, tc.terminal)
			}
		})
	}
}
