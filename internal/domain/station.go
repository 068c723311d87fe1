package domain

import (
	"time"
)

type StationStatus string

const (
	StationStatusActive      StationStatus = "Active"
	StationStatusInactive    StationStatus = "Inactive"
	StationStatusMaintenance StationStatus = "Maintenance"
)

// SwapStation is a physical battery-swap location.
type SwapStation struct {
	ID        string        `json:"id" gorm:"primaryKey"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Status    StationStatus `json:"status"`
	Capacity  int           `json:"capacity"` // Battery slots
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Batteries []Battery `json:"batteries,omitempty" gorm:"foreignKey:StationID"`
}

type BatteryStatus string

const (
	BatteryStatusAvailable BatteryStatus = "Available"
	BatteryStatusInUse     BatteryStatus = "InUse"
	BatteryStatusCharging  BatteryStatus = "Charging"
	BatteryStatusFaulted   BatteryStatus = "Faulted"
)

// Battery is a swappable battery pack tracked per station.
type Battery struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	StationID    string        `json:"station_id" gorm:"index"`
	SerialNumber string        `json:"serial_number" gorm:"uniqueIndex"`
	Model        string        `json:"model"`
	Status       BatteryStatus `json:"status" gorm:"index"`
	ChargeLevel  int           `json:"charge_level"` // Percent
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
