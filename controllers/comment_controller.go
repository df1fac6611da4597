package controllers

import (
	"net/http"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/middlewares"
	"github.com/Sgonchar89/foodgram-project/services"

	"github.com/gin-gonic/gin"
)

func ListComments(c *gin.Context) {
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	commentSvc := services.NewCommentService(config.DB)
	out, err := commentSvc.List(recipeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateComment(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	commentSvc := services.NewCommentService(config.DB)
	out, err := commentSvc.Create(user, recipeID, input.Text)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func DeleteComment(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	commentID, ok := paramID(c, "commentID")
	if !ok {
		return
	}

	commentSvc := services.NewCommentService(config.DB)
	if err := commentSvc.Delete(user, recipeID, commentID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
