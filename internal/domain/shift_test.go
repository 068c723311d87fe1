package domain

import (
	"testing"
	"time"
)

func TestOverlaps_HalfOpenInterval(t *testing.T) {
	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	shift := &StaffShift{
		ShiftStart: base,
		ShiftEnd:   base.Add(8 * time.Hour), // 08:00 - 16:00
	}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical interval", base, base.Add(8 * time.Hour), true},
		{"contained", base.Add(2 * time.Hour), base.Add(4 * time.Hour), true},
		{"overlaps start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"overlaps end", base.Add(7 * time.Hour), base.Add(9 * time.Hour), true},
		{"back to back before", base.Add(-8 * time.Hour), base, false},
		{"back to back after", base.Add(8 * time.Hour), base.Add(16 * time.Hour), false},
		{"fully before", base.Add(-4 * time.Hour), base.Add(-2 * time.Hour), false},
		{"fully after", base.Add(10 * time.Hour), base.Add(12 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shift.Overlaps(tc.start, tc.end); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestCountsForOverlap(t *testing.T) {
	for _, status := range []ShiftStatus{ShiftStatusScheduled, ShiftStatusCompleted, ShiftStatusAbsent} {
		shift := &StaffShift{Status: status}
		if !shift.CountsForOverlap() {
			t.Errorf("status '%s' should occupy its interval", status)
		}
	}

	cancelled := &StaffShift{Status: ShiftStatusCancelled}
	if cancelled.CountsForOverlap() {
		t.Error("cancelled shift should free its slot")
	}
}

func TestDeriveShiftDate_UsesUTCCalendarDay(t *testing.T) {
	// 23:30 in UTC-3 is already the next day in UTC.
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2026, 9, 1, 23, 30, 0, 0, saoPaulo)

	if got := DeriveShiftDate(start); got != "2026-09-02" {
		t.Errorf("expected '2026-09-02', got '%s'", got)
	}

	utcStart := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
	if got := DeriveShiftDate(utcStart); got != "2026-09-01" {
		t.Errorf("expected '2026-09-01', got '%s'", got)
	}
}

func TestShiftStatus_SelfServiceAllowed(t *testing.T) {
	allowed := []ShiftStatus{ShiftStatusCompleted, ShiftStatusAbsent, ShiftStatusCancelled}
	for _, status := range allowed {
		if !status.SelfServiceAllowed() {
			t.Errorf("status '%s' should be self-service", status)
		}
	}
	if ShiftStatusScheduled.SelfServiceAllowed() {
		t.Error("staff must not reschedule their own shifts")
	}
}

func TestShiftStatus_Valid(t *testing.T) {
	if !ShiftStatusScheduled.Valid() {
		t.Error("scheduled should be valid")
	}
	if ShiftStatus("on_break").Valid() {
		t.Error("unknown status should be invalid")
	}
}
