package controllers

import (
	"net/http"
	"strings"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/middlewares"
	"github.com/Sgonchar89/foodgram-project/services"
	"github.com/Sgonchar89/foodgram-project/utils"

	"github.com/gin-gonic/gin"
)

// GET /recipes?author=1&tags=breakfast,dinner&is_favorited=1&is_in_shopping_cart=1&page=1&limit=10
func ListRecipes(c *gin.Context) {
	var viewerID uint
	if viewer := middlewares.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}

	filter := services.RecipeFilter{
		AuthorID:      uint(queryInt(c, "author", 0)),
		TagSlugs:      services.ParseTagSlugs(c.Query("tags")),
		OnlyFavorited: c.Query("is_favorited") == "1" || c.Query("is_favorited") == "true",
		OnlyInCart:    c.Query("is_in_shopping_cart") == "1" || c.Query("is_in_shopping_cart") == "true",
		Page:          queryInt(c, "page", 1),
		Limit:         queryInt(c, "limit", 10),
	}

	recipeSvc := services.NewRecipeService(config.DB)
	out, err := recipeSvc.List(filter, viewerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetRecipe(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var viewerID uint
	if viewer := middlewares.CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}

	recipeSvc := services.NewRecipeService(config.DB)
	out, err := recipeSvc.Get(id, viewerID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// uploadImage swaps an inline base64 payload for the stored object's URL.
func uploadImage(c *gin.Context, input *services.RecipeInput) bool {
	if !strings.HasPrefix(input.Image, "data:") {
		return true
	}
	url, err := utils.UploadBase64Image(input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	input.Image = url
	return true
}

func CreateRecipe(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !uploadImage(c, &input) {
		return
	}

	recipeSvc := services.NewRecipeService(config.DB)
	out, err := recipeSvc.Create(user, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func UpdateRecipe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !uploadImage(c, &input) {
		return
	}

	recipeSvc := services.NewRecipeService(config.DB)
	out, err := recipeSvc.Update(user, id, input)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func DeleteRecipe(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	recipeSvc := services.NewRecipeService(config.DB)
	if err := recipeSvc.Delete(user, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
