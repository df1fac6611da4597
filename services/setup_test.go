package services

import (
	"fmt"
	"testing"

	"github.com/Sgonchar89/foodgram-project/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.Favourite{},
		&models.CartEntry{},
		&models.Follow{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
		Password: "irrelevant",
		Role:     models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return &user
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) models.Ingredient {
	t.Helper()
	ing := models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient %s: %v", name, err)
	}
	return ing
}

func seedTag(t *testing.T, db *gorm.DB, name, slug string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name, Color: "#49B64E", Slug: slug}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("seed tag %s: %v", name, err)
	}
	return tag
}

// seedRecipe persists a minimal valid recipe through the service so the
// full authoring path (header, line items, tags) runs.
func seedRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, items []RecipeIngredientInput, tagIDs []uint) *RecipeDetail {
	t.Helper()
	detail, err := NewRecipeService(db).Create(author, RecipeInput{
		Name:        name,
		Text:        "test recipe",
		CookingTime: 10,
		Ingredients: items,
		Tags:        tagIDs,
	})
	if err != nil {
		t.Fatalf("seed recipe %s: %v", name, err)
	}
	return detail
}
