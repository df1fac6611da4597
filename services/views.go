package services

import (
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

// Read-side wire shapes. Write shapes live next to the services that
// accept them; the two never share structs.

type UserView struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type TagView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type IngredientView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredientView is an IngredientView plus the recipe's amount.
type RecipeIngredientView struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeDetail struct {
	ID               uint                   `json:"id"`
	Author           UserView               `json:"author"`
	Name             string                 `json:"name"`
	Text             string                 `json:"text"`
	Ingredients      []RecipeIngredientView `json:"ingredients"`
	Tags             []TagView              `json:"tags"`
	Image            string                 `json:"image"`
	CookingTime      int                    `json:"cooking_time"`
	IsFavorited      bool                   `json:"is_favorited"`
	IsInShoppingCart bool                   `json:"is_in_shopping_cart"`
}

// RecipeShort is the trimmed projection used by favourites, cart entries
// and subscription listings.
type RecipeShort struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func newTagView(t models.Tag) TagView {
	return TagView{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func newIngredientView(i models.Ingredient) IngredientView {
	return IngredientView{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

func newRecipeShort(r models.Recipe) RecipeShort {
	return RecipeShort{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// newUserView fills IsSubscribed for the viewer; anonymous viewers
// (viewerID == 0) are never subscribed.
func newUserView(db *gorm.DB, u models.User, viewerID uint) UserView {
	view := UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
	if viewerID != 0 {
		var count int64
		db.Model(&models.Follow{}).
			Where("follower_id = ? AND author_id = ?", viewerID, u.ID).
			Count(&count)
		view.IsSubscribed = count > 0
	}
	return view
}
