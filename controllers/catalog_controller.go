package controllers

import (
	"net/http"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/services"

	"github.com/gin-gonic/gin"
)

// GET /ingredients?name=su
func ListIngredients(c *gin.Context) {
	ingSvc := services.NewIngredientService(config.DB)
	out, err := ingSvc.List(c.Query("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetIngredient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ingSvc := services.NewIngredientService(config.DB)
	out, err := ingSvc.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func ListTags(c *gin.Context) {
	tagSvc := services.NewTagService(config.DB)
	out, err := tagSvc.List()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetTag(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tagSvc := services.NewTagService(config.DB)
	out, err := tagSvc.Get(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
