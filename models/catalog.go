package models

import "gorm.io/gorm"

// Reference data. Loaded once by an admin, read-only through the API.
type Ingredient struct {
	gorm.Model
	Name            string `gorm:"index;not null"`
	MeasurementUnit string `gorm:"not null"`
}

type Tag struct {
	gorm.Model
	Name  string `gorm:"uniqueIndex;not null"`
	Color string `gorm:"type:varchar(7);default:#888888"` // HEX, e.g. #49B64E
	Slug  string `gorm:"uniqueIndex;not null"`
}
