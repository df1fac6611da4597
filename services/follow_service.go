package services

import (
	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow subscribes follower to the author's recipes. Following yourself
// is not rejected.
func (s *FollowService) Follow(followerID, authorID uint) (*UserView, error) {
	var author models.User
	if err := s.db.First(&author, authorID).Error; err != nil {
		return nil, errs.FromDB("user", err)
	}

	follow := models.Follow{FollowerID: followerID, AuthorID: authorID}
	key := models.Follow{FollowerID: followerID, AuthorID: authorID}
	if err := addRelation(s.db, "subscription", &follow, &key); err != nil {
		return nil, err
	}

	view := newUserView(s.db, author, followerID)
	return &view, nil
}

func (s *FollowService) Unfollow(followerID, authorID uint) error {
	key := models.Follow{FollowerID: followerID, AuthorID: authorID}
	return removeRelation(s.db, "subscription", &key)
}

// SubscriptionView is a followed author plus a short slice of their
// recipes, newest first.
type SubscriptionView struct {
	UserView
	Recipes      []RecipeShort `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

// Subscriptions lists every author the user follows. recipesLimit bounds
// the nested recipe list; zero means no bound.
func (s *FollowService) Subscriptions(userID uint, recipesLimit int) ([]SubscriptionView, error) {
	var authors []models.User
	err := s.db.
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.id").
		Find(&authors).Error
	if err != nil {
		return nil, errs.FromDB("subscriptions", err)
	}

	out := make([]SubscriptionView, 0, len(authors))
	for _, author := range authors {
		view := SubscriptionView{
			UserView: newUserView(s.db, author, userID),
			Recipes:  []RecipeShort{},
		}

		q := s.db.Model(&models.Recipe{}).
			Where("author_id = ?", author.ID).
			Order("created_at DESC")
		if recipesLimit > 0 {
			q = q.Limit(recipesLimit)
		}
		var recipes []models.Recipe
		if err := q.Find(&recipes).Error; err != nil {
			return nil, errs.FromDB("recipes", err)
		}
		for _, r := range recipes {
			view.Recipes = append(view.Recipes, newRecipeShort(r))
		}

		if err := s.db.Model(&models.Recipe{}).
			Where("author_id = ?", author.ID).
			Count(&view.RecipesCount).Error; err != nil {
			return nil, errs.FromDB("recipes", err)
		}
		out = append(out, view)
	}
	return out, nil
}
