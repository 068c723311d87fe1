package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleStaff  UserRole = "staff"
	UserRoleDriver UserRole = "driver"
)

type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name"`
	Email            string    `json:"email" gorm:"uniqueIndex"`
	Phone            string    `json:"phone,omitempty" gorm:"index"`
	Password         string    `json:"-"` // Hashed password
	Role             UserRole  `json:"role"`
	Status           string    `json:"status"` // Active, Inactive, Blocked
	DefaultStationID string    `json:"default_station_id,omitempty" gorm:"index"` // Staff home station
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsActiveStaff reports whether the user can be scheduled for shifts.
func (u *User) IsActiveStaff() bool {
	return u.Role == UserRoleStaff && u.Status == "Active"
}

// Vehicle is a driver's registered vehicle eligible for battery swaps.
type Vehicle struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index"`
	PlateNumber string    `json:"plate_number" gorm:"uniqueIndex"`
	Model       string    `json:"model"`
	BatteryType string    `json:"battery_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Actor identifies the authenticated caller of a core operation. Every
// service method that enforces ownership or role rules takes one explicitly
// instead of reading request-scoped state.
type Actor struct {
	ID   string   `json:"id"`
	Role UserRole `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}

func (a Actor) IsStaff() bool {
	return a.Role == UserRoleStaff
}

func (a Actor) IsDriver() bool {
	return a.Role == UserRoleDriver
}
