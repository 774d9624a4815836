package models

import "gorm.io/gorm"

// GardenLayout holds the freeform 2D placement of a user's beds as one JSON
// document. At most one layout exists per user.
type GardenLayout struct {
	gorm.Model
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User       User   `gorm:"foreignKey:UserID" json:"-"`
	LayoutJSON string `gorm:"type:text;not null" json:"-"`
}
