package models

import "gorm.io/gorm"

type Planting struct {
	gorm.Model
	BedID               uint      `gorm:"not null;index" json:"bed_id"`
	Bed                 GardenBed `gorm:"foreignKey:BedID" json:"-"`
	PlantTypeID         uint      `gorm:"not null;index" json:"plant_type_id"`
	PlantType           PlantType `gorm:"foreignKey:PlantTypeID" json:"-"`
	Year                int       `gorm:"index" json:"year"`
	Season              string    `json:"season"`
	DatePlanted         *Date     `json:"date_planted"`
	ExpectedHarvestDate *Date     `json:"expected_harvest_date"`
	Notes               string    `gorm:"type:text" json:"notes"`
	Quantity            string    `json:"quantity"`
	IsCurrent           bool      `gorm:"default:true;index" json:"is_current"`
}
