package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UnitsImperial = "imperial"
	UnitsMetric   = "metric"
)

type User struct {
	gorm.Model
	Email          string        `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string        `gorm:"not null" json:"-"`
	PreferredUnits string        `gorm:"not null;default:imperial" json:"preferred_units"`
	LastLoginAt    *time.Time    `json:"last_login_at,omitempty"`
	GardenBeds     []GardenBed   `gorm:"foreignKey:UserID" json:"-"`
	Layout         *GardenLayout `gorm:"foreignKey:UserID" json:"-"`
}
