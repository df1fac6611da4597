package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	AuthorID    uint   `gorm:"index;not null"`
	Author      User   `gorm:"foreignKey:AuthorID"`
	Name        string `gorm:"not null"`
	Text        string
	Image       string // public URL after upload
	CookingTime int    `gorm:"check:cooking_time >= 1"` // minutes
	Ingredients []RecipeIngredient
	Tags        []Tag `gorm:"many2many:recipe_tags"`
}

// RecipeIngredient is one line item of a recipe. Rows live and die with
// recipe authoring: updates delete the whole set and re-insert it, so the
// table is hard-deleted (no DeletedAt) to keep the unique index honest.
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey"`
	RecipeID     uint       `gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	IngredientID uint       `gorm:"uniqueIndex:idx_recipe_ingredient;not null"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID"`
	Amount       int        `gorm:"check:amount >= 1"`
}

type Comment struct {
	gorm.Model
	RecipeID uint `gorm:"index;not null"`
	AuthorID uint `gorm:"index;not null"`
	Author   User `gorm:"foreignKey:AuthorID"`
	Text     string
}
