package domain

import (
	"time"
)

// ServicePackage is a prepaid swap entitlement offer. Read-only to the
// subscription service; only admins create or edit packages.
type ServicePackage struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        int64     `json:"price"` // Minor currency units
	Currency     string    `json:"currency"`
	DurationDays int       `json:"duration_days"`
	SwapLimit    *int      `json:"swap_limit,omitempty"` // nil = unlimited
	IsActive     bool      `json:"is_active" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// UserSubscription is a purchased entitlement to swaps under a package.
type UserSubscription struct {
	ID             string             `json:"id" gorm:"primaryKey"`
	UserID         string             `json:"user_id" gorm:"index"`
	PackageID      string             `json:"package_id" gorm:"index"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date" gorm:"index"`
	RemainingSwaps *int               `json:"remaining_swaps,omitempty"` // nil = unlimited
	AutoRenew      bool               `json:"auto_renew"`
	Status         SubscriptionStatus `json:"status" gorm:"index"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	Package *ServicePackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
}

// IsActiveAt reports whether the subscription grants entitlements at t.
func (s *UserSubscription) IsActiveAt(t time.Time) bool {
	return s.Status == SubscriptionStatusActive && s.EndDate.After(t)
}

// HasRemainingSwaps reports whether a swap can still be consumed.
// Unlimited packages always have swaps remaining.
func (s *UserSubscription) HasRemainingSwaps() bool {
	return s.RemainingSwaps == nil || *s.RemainingSwaps > 0
}
