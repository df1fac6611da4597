package services

import (
	"time"

	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

type CommentView struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *CommentService) List(recipeID uint) ([]CommentView, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return nil, errs.FromDB("recipe", err)
	}

	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errs.FromDB("comments", err)
	}

	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentView{
			ID:        c.ID,
			Author:    c.Author.Username,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

func (s *CommentService) Create(author *models.User, recipeID uint, text string) (*CommentView, error) {
	if text == "" {
		return nil, errs.NewValidation("text", "must not be empty")
	}
	var recipe models.Recipe
	if err := s.db.First(&recipe, recipeID).Error; err != nil {
		return nil, errs.FromDB("recipe", err)
	}

	comment := models.Comment{RecipeID: recipeID, AuthorID: author.ID, Text: text}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, errs.FromDB("comment", err)
	}
	return &CommentView{
		ID:        comment.ID,
		Author:    author.Username,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// Delete: only the comment's author or staff may remove it.
func (s *CommentService) Delete(actor *models.User, recipeID, commentID uint) error {
	var comment models.Comment
	err := s.db.Where("id = ? AND recipe_id = ?", commentID, recipeID).
		First(&comment).Error
	if err != nil {
		return errs.FromDB("comment", err)
	}
	if comment.AuthorID != actor.ID && !actor.IsStaff() {
		return errs.NewForbidden("only the author may delete this comment")
	}
	return s.db.Delete(&comment).Error
}
