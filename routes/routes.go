package routes

import (
	"github.com/Sgonchar89/foodgram-project/controllers"
	"github.com/Sgonchar89/foodgram-project/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Catalog: read-only, open to anonymous users
	r.GET("/tags", controllers.ListTags)
	r.GET("/tags/:id", controllers.GetTag)
	r.GET("/ingredients", controllers.ListIngredients)
	r.GET("/ingredients/:id", controllers.GetIngredient)

	// Recipes: reads are public (flags filled when a token is present),
	// writes require auth
	recipes := r.Group("/recipes")
	recipes.Use(middlewares.OptionalAuth())
	{
		recipes.GET("", controllers.ListRecipes)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.GET("/:id/comments", controllers.ListComments)
	}

	recipesAuth := r.Group("/recipes")
	recipesAuth.Use(middlewares.AuthMiddleware())
	{
		recipesAuth.POST("", controllers.CreateRecipe)
		recipesAuth.PATCH("/:id", controllers.UpdateRecipe)
		recipesAuth.DELETE("/:id", controllers.DeleteRecipe)

		recipesAuth.POST("/:id/favorite", controllers.AddFavourite)
		recipesAuth.DELETE("/:id/favorite", controllers.RemoveFavourite)
		recipesAuth.POST("/:id/shopping_cart", controllers.AddToCart)
		recipesAuth.DELETE("/:id/shopping_cart", controllers.RemoveFromCart)
		recipesAuth.GET("/download_shopping_cart", controllers.DownloadShoppingCart)

		recipesAuth.POST("/:id/comments", controllers.CreateComment)
		recipesAuth.DELETE("/:id/comments/:commentID", controllers.DeleteComment)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", middlewares.OptionalAuth(), controllers.GetUser)

		authed := users.Group("")
		authed.Use(middlewares.AuthMiddleware())
		{
			authed.GET("/me", controllers.GetProfile)
			authed.PUT("/me", controllers.UpdateProfile)
			authed.POST("/set_password", controllers.SetPassword)
			authed.GET("/subscriptions", controllers.ListSubscriptions)
			authed.POST("/:id/subscribe", controllers.Subscribe)
			authed.DELETE("/:id/subscribe", controllers.Unsubscribe)
		}
	}

	return r
}
