package controllers

import (
	"net/http"

	"github.com/Sgonchar89/foodgram-project/config"
	"github.com/Sgonchar89/foodgram-project/middlewares"
	"github.com/Sgonchar89/foodgram-project/services"

	"github.com/gin-gonic/gin"
)

func AddToCart(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	cartSvc := services.NewCartService(config.DB)
	out, err := cartSvc.Add(user.ID, recipeID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func RemoveFromCart(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	recipeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	cartSvc := services.NewCartService(config.DB)
	if err := cartSvc.Remove(user.ID, recipeID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /recipes/download_shopping_cart — the aggregated list as a text
// attachment, one ingredient per line.
func DownloadShoppingCart(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	cartSvc := services.NewCartService(config.DB)
	body, err := cartSvc.ShoppingList(user.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="wishlist.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}
