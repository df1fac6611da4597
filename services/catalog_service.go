package services

import (
	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

// Catalog lookups over the immutable reference data. Mutation goes
// through migrations or the admin loader, never this API.

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// List returns ingredients, optionally narrowed to names starting with
// namePrefix.
func (s *IngredientService) List(namePrefix string) ([]IngredientView, error) {
	q := s.db.Model(&models.Ingredient{}).Order("name")
	if namePrefix != "" {
		q = q.Where("name LIKE ?", namePrefix+"%")
	}
	var ingredients []models.Ingredient
	if err := q.Find(&ingredients).Error; err != nil {
		return nil, errs.FromDB("ingredients", err)
	}
	out := make([]IngredientView, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, newIngredientView(ing))
	}
	return out, nil
}

func (s *IngredientService) Get(id uint) (*IngredientView, error) {
	var ing models.Ingredient
	if err := s.db.First(&ing, id).Error; err != nil {
		return nil, errs.FromDB("ingredient", err)
	}
	view := newIngredientView(ing)
	return &view, nil
}

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) List() ([]TagView, error) {
	var tags []models.Tag
	if err := s.db.Order("id").Find(&tags).Error; err != nil {
		return nil, errs.FromDB("tags", err)
	}
	out := make([]TagView, 0, len(tags))
	for _, tag := range tags {
		out = append(out, newTagView(tag))
	}
	return out, nil
}

func (s *TagService) Get(id uint) (*TagView, error) {
	var tag models.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		return nil, errs.FromDB("tag", err)
	}
	view := newTagView(tag)
	return &view, nil
}
