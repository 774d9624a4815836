package models

import "gorm.io/gorm"

// PlantType is a shared catalog entry, not owned by any user. It is never
// deleted while plantings reference it.
type PlantType struct {
	gorm.Model
	CommonName     string   `gorm:"uniqueIndex;not null" json:"common_name"`
	ScientificName string   `json:"scientific_name"`
	Description    string   `gorm:"type:text" json:"description"`
	AvgHeight      *float64 `json:"avg_height"`
	AvgSpread      *float64 `json:"avg_spread"`
	RotationFamily string   `gorm:"index" json:"rotation_family"`
	Notes          string   `gorm:"type:text" json:"notes"`
}
