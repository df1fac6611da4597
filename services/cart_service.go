package services

import (
	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"
	"github.com/Sgonchar89/foodgram-project/utils"

	"gorm.io/gorm"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// Add puts the recipe into the user's cart. Conflict when it is already
// there, NotFound when the recipe does not exist.
func (s *CartService) Add(userID, recipeID uint) (*RecipeShort, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return nil, errs.FromDB("recipe", err)
	}

	entry := models.CartEntry{UserID: userID, RecipeID: recipeID}
	key := models.CartEntry{UserID: userID, RecipeID: recipeID}
	if err := addRelation(s.db, "cart entry", &entry, &key); err != nil {
		return nil, err
	}

	short := newRecipeShort(recipe)
	return &short, nil
}

func (s *CartService) Remove(userID, recipeID uint) error {
	key := models.CartEntry{UserID: userID, RecipeID: recipeID}
	return removeRelation(s.db, "cart entry", &key)
}

// Purchases aggregates the line items of every recipe in the user's cart,
// grouped by the ingredient's natural identity (name + unit) and summed.
// Two catalog rows sharing name and unit merge into one entry. Output is
// ordered by ingredient name so the rendered list is deterministic.
func (s *CartService) Purchases(userID uint) ([]utils.PurchaseRow, error) {
	rows := []utils.PurchaseRow{}
	err := s.db.
		Table("recipe_ingredients").
		Select("ingredients.name AS name, " +
			"ingredients.measurement_unit AS measurement_unit, " +
			"SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN cart_entries ON cart_entries.recipe_id = recipe_ingredients.recipe_id").
		Where("cart_entries.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.FromDB("shopping cart", err)
	}
	return rows, nil
}

// ShoppingList renders the aggregated purchases as the downloadable
// plain-text document.
func (s *CartService) ShoppingList(userID uint) (string, error) {
	rows, err := s.Purchases(userID)
	if err != nil {
		return "", err
	}
	return utils.RenderShoppingList(rows), nil
}
