package services

import (
	"time"

	"github.com/Sgonchar89/foodgram-project/errs"
	"github.com/Sgonchar89/foodgram-project/models"
	"github.com/Sgonchar89/foodgram-project/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// Register creates the account and issues the auth token as an explicit
// final step of the same use case.
func (s *UserService) Register(in RegisterInput) (*models.User, string, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:     in.Email,
		Username:  in.Username,
		Password:  hashed,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      models.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", errs.FromDB("user", err)
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errs.NewUnauthorized("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errs.NewUnauthorized("invalid email or password")
	}
	return utils.GenerateJWT(user.ID, user.Email)
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, errs.FromDB("user", err)
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errs.FromDB("user", err)
	}
	return &user, nil
}

// Profile is the user as seen by a viewer (is_subscribed depends on who asks).
func (s *UserService) Profile(userID, viewerID uint) (*UserView, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	view := newUserView(s.db, *user, viewerID)
	return &view, nil
}

type ProfileUpdateInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

func (s *UserService) UpdateProfile(userID uint, in ProfileUpdateInput) (*UserView, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Bio = in.Bio
	if err := s.db.Save(user).Error; err != nil {
		return nil, errs.FromDB("user", err)
	}
	view := newUserView(s.db, *user, userID)
	return &view, nil
}

// SetPassword changes the password after checking the current one.
func (s *UserService) SetPassword(userID uint, current, next string) error {
	user, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return errs.NewValidation("current_password", "wrong password")
	}
	hashed, err := utils.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.Save(user).Error
}

// RequestPasswordReset stores a short-lived reset code on the account and
// mails it. An unknown email is not an error to the caller.
func (s *UserService) RequestPasswordReset(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	user.ResetToken = utils.GenerateRandomToken(6)
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return errs.FromDB("user", err)
	}
	return utils.SendResetEmail(user.Email, user.ResetToken)
}

func (s *UserService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ? AND reset_token <> ''", token).
		First(&user).Error; err != nil {
		return errs.NewValidation("token", "invalid or expired token")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errs.NewValidation("token", "invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
