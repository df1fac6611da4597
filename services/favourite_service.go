package services

import (
	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

type FavouriteService struct {
	db *gorm.DB
}

func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{db: db}
}

func (s *FavouriteService) Add(userID, recipeID uint) (*RecipeShort, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return nil, errs.FromDB("recipe", err)
	}

	fav := models.Favourite{UserID: userID, RecipeID: recipeID}
	key := models.Favourite{UserID: userID, RecipeID: recipeID}
	if err := addRelation(s.db, "favourite", &fav, &key); err != nil {
		return nil, err
	}

	short := newRecipeShort(recipe)
	return &short, nil
}

func (s *FavouriteService) Remove(userID, recipeID uint) error {
	key := models.Favourite{UserID: userID, RecipeID: recipeID}
	return removeRelation(s.db, "favourite", &key)
}
