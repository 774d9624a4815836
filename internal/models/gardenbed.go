package models

import "gorm.io/gorm"

type GardenBed struct {
	gorm.Model
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Name        string     `gorm:"not null" json:"name"`
	Shape       string     `gorm:"not null" json:"shape"`
	ShapeParams JSONMap    `gorm:"not null" json:"shape_params"`
	UnitMeasure string     `gorm:"not null" json:"unit_measure"`
	Notes       string     `gorm:"type:text" json:"notes"`
	Plantings   []Planting `gorm:"foreignKey:BedID;constraint:OnDelete:CASCADE" json:"-"`
}
