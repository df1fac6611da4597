package controllers

import (
	"net/http"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/middlewares"
	"github.com/Sgonchar89/foodgram-project/services"

	"github.com/gin-gonic/gin"
)

func AddFavourite(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	favSvc := services.NewFavouriteService(config.DB)
	out, err := favSvc.Add(user.ID, recipeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func RemoveFavourite(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	favSvc := services.NewFavouriteService(config.DB)
	if err := favSvc.Remove(user.ID, recipeID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
