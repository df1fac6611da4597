package controllers

import (
	"net/http"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/middlewares"
	"github.com/Sgonchar89/foodgram-project/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	userSvc := services.NewUserService(config.DB)
	view, err := userSvc.Profile(user.ID, user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func UpdateProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input services.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	view, err := userSvc.UpdateProfile(user.ID, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var viewerID uint
	if viewer := middlewares.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}

	userSvc := services.NewUserService(config.DB)
	view, err := userSvc.Profile(id, viewerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func SetPassword(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userSvc := services.NewUserService(config.DB)
	if err := userSvc.SetPassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ListSubscriptions(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipesLimit := queryInt(c, "recipes_limit", 0)

	followSvc := services.NewFollowService(config.DB)
	subs, err := followSvc.Subscriptions(user.ID, recipesLimit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func Subscribe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	authorID, ok := paramID(c, "id")
	if !ok {
		return
	}

	followSvc := services.NewFollowService(config.DB)
	view, err := followSvc.Follow(user.ID, authorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func Unsubscribe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	authorID, ok := paramID(c, "id")
	if !ok {
		return
	}

	followSvc := services.NewFollowService(config.DB)
	if err := followSvc.Unfollow(user.ID, authorID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
