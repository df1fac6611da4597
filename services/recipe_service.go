package services

import (
	"fmt"
	"strings"

	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeIngredientInput references a catalog ingredient by id.
type RecipeIngredientInput struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeInput is the write shape for both create and update.
type RecipeInput struct {
	Name        string                  `json:"name" binding:"required"`
	Text        string                  `json:"text"`
	CookingTime int                     `json:"cooking_time"`
	Image       string                  `json:"image"`
	Ingredients []RecipeIngredientInput `json:"ingredients" binding:"required"`
	Tags        []uint                  `json:"tags"`
}

// validate applies the authoring rules that do not need the catalog:
// positive cooking time, no duplicate ingredients or tags, no negative
// amounts. A zero amount passes here; the column CHECK still rejects it
// at insert.
func (s *RecipeService) validate(in RecipeInput) error {
	if in.CookingTime <= 0 {
		return errs.NewValidation("cooking_time", "must be a positive number of minutes")
	}

	seen := make(map[uint]bool, len(in.Ingredients))
	for _, item := range in.Ingredients {
		if seen[item.ID] {
			return errs.NewValidation("ingredients",
				fmt.Sprintf("ingredient %d is listed more than once", item.ID))
		}
		seen[item.ID] = true
		if item.Amount < 0 {
			return errs.NewValidation("ingredients",
				fmt.Sprintf("amount for ingredient %d must not be negative", item.ID))
		}
	}

	seenTags := make(map[uint]bool, len(in.Tags))
	for _, tagID := range in.Tags {
		if seenTags[tagID] {
			return errs.NewValidation("tags",
				fmt.Sprintf("tag %d is listed more than once", tagID))
		}
		seenTags[tagID] = true
	}
	return nil
}

// resolve checks every referenced ingredient id against the catalog and
// loads the tag rows, failing with NotFound naming the first id that does
// not exist.
func (s *RecipeService) resolve(in RecipeInput) ([]models.Tag, error) {
	for _, item := range in.Ingredients {
		var ing models.Ingredient
		if err := s.db.First(&ing, item.ID).Error; err != nil {
			return nil, errs.NewNotFound(fmt.Sprintf("ingredient %d", item.ID))
		}
	}

	tags := make([]models.Tag, 0, len(in.Tags))
	for _, tagID := range in.Tags {
		var tag models.Tag
		if err := s.db.First(&tag, tagID).Error; err != nil {
			return nil, errs.NewNotFound(fmt.Sprintf("tag %d", tagID))
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func lineItems(recipeID uint, in RecipeInput) []models.RecipeIngredient {
	items := make([]models.RecipeIngredient, 0, len(in.Ingredients))
	for _, item := range in.Ingredients {
		items = append(items, models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.ID,
			Amount:       item.Amount,
		})
	}
	return items
}

// Create validates the payload and persists header, line items and tag
// associations as one transaction.
func (s *RecipeService) Create(author *models.User, in RecipeInput) (*RecipeDetail, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}
	tags, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		AuthorID:    author.ID,
		Name:        in.Name,
		Text:        in.Text,
		Image:       in.Image,
		CookingTime: in.CookingTime,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return errs.FromDB("recipe", err)
		}
		if items := lineItems(recipe.ID, in); len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errs.FromDB("recipe ingredients", err)
			}
		}
		if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
			return errs.FromDB("recipe tags", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(recipe.ID, author.ID)
}

// Update replaces the header fields and the whole line-item and tag sets.
// Only the author or staff may touch a recipe.
func (s *RecipeService) Update(actor *models.User, recipeID uint, in RecipeInput) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return nil, errs.FromDB("recipe", err)
	}
	if recipe.AuthorID != actor.ID && !actor.IsStaff() {
		return nil, errs.NewForbidden("only the author may edit this recipe")
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}
	tags, err := s.resolve(in)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		recipe.Name = in.Name
		recipe.Text = in.Text
		recipe.CookingTime = in.CookingTime
		if in.Image != "" {
			recipe.Image = in.Image
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return errs.FromDB("recipe", err)
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return errs.FromDB("recipe ingredients", err)
		}
		if items := lineItems(recipe.ID, in); len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return errs.FromDB("recipe ingredients", err)
			}
		}
		if err := tx.Model(&recipe).Association("Tags").Replace(tags); err != nil {
			return errs.FromDB("recipe tags", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(recipe.ID, actor.ID)
}

// Delete removes the recipe together with its line items, tag links and
// the toggle rows pointing at it, mirroring the cascade of the schema.
func (s *RecipeService) Delete(actor *models.User, recipeID uint) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return errs.FromDB("recipe", err)
	}
	if recipe.AuthorID != actor.ID && !actor.IsStaff() {
		return errs.NewForbidden("only the author may delete this recipe")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return errs.FromDB("recipe ingredients", err)
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return errs.FromDB("recipe tags", err)
		}
		for _, rel := range []interface{}{
			&models.Favourite{}, &models.CartEntry{}, &models.Comment{},
		} {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(rel).Error; err != nil {
				return errs.FromDB("recipe relations", err)
			}
		}
		if err := tx.Delete(&recipe).Error; err != nil {
			return errs.FromDB("recipe", err)
		}
		return nil
	})
}

func (s *RecipeService) Get(recipeID, viewerID uint) (*RecipeDetail, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		First(&recipe, recipeID).Error
	if err != nil {
		return nil, errs.FromDB("recipe", err)
	}
	detail := s.buildDetail(recipe, viewerID)
	return &detail, nil
}

// RecipeFilter narrows List; zero values mean "no constraint".
type RecipeFilter struct {
	AuthorID      uint
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
	Page          int
	Limit         int
}

func (s *RecipeService) List(filter RecipeFilter, viewerID uint) ([]RecipeDetail, error) {
	q := s.db.Model(&models.Recipe{}).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Order("recipes.created_at DESC")

	if filter.AuthorID != 0 {
		q = q.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		q = q.Distinct("recipes.*").
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
	}
	if filter.OnlyFavorited && viewerID != 0 {
		q = q.Joins("JOIN favourites ON favourites.recipe_id = recipes.id").
			Where("favourites.user_id = ?", viewerID)
	}
	if filter.OnlyInCart && viewerID != 0 {
		q = q.Joins("JOIN cart_entries ON cart_entries.recipe_id = recipes.id").
			Where("cart_entries.user_id = ?", viewerID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	q = q.Limit(limit).Offset((page - 1) * limit)

	var recipes []models.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, errs.FromDB("recipes", err)
	}

	out := make([]RecipeDetail, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, s.buildDetail(r, viewerID))
	}
	return out, nil
}

func (s *RecipeService) buildDetail(recipe models.Recipe, viewerID uint) RecipeDetail {
	detail := RecipeDetail{
		ID:          recipe.ID,
		Author:      newUserView(s.db, recipe.Author, viewerID),
		Name:        recipe.Name,
		Text:        recipe.Text,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
		Ingredients: make([]RecipeIngredientView, 0, len(recipe.Ingredients)),
		Tags:        make([]TagView, 0, len(recipe.Tags)),
	}
	for _, item := range recipe.Ingredients {
		detail.Ingredients = append(detail.Ingredients, RecipeIngredientView{
			ID:              item.IngredientID,
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}
	for _, tag := range recipe.Tags {
		detail.Tags = append(detail.Tags, newTagView(tag))
	}
	if viewerID != 0 {
		var count int64
		s.db.Model(&models.Favourite{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		detail.IsFavorited = count > 0

		s.db.Model(&models.CartEntry{}).
			Where("user_id = ? AND recipe_id = ?", viewerID, recipe.ID).
			Count(&count)
		detail.IsInShoppingCart = count > 0
	}
	return detail
}

// ParseTagSlugs splits a comma separated ?tags= value.
func ParseTagSlugs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	slugs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			slugs = append(slugs, p)
		}
	}
	return slugs
}
