// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lazycook/internal/delivery/http/middleware"
	"lazycook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; registered outside the guarded group so they stay
	// reachable without a token.
	e.POST("/api/register", r.accountHandler.Register)
	e.POST("/api/login", r.accountHandler.Login)

	// Recipe bookkeeping routes that require authentication
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/profile", r.accountHandler.GetProfile)

		apiGroup.POST("/authors", r.recipeHandler.CreateAuthor)
		apiGroup.GET("/authors", r.recipeHandler.ListAuthors)
		apiGroup.DELETE("/authors/:id", r.recipeHandler.DeleteAuthor)

		apiGroup.POST("/recipes", r.recipeHandler.CreateRecipe)
		apiGroup.GET("/recipes", r.recipeHandler.ListRecipes)
		apiGroup.GET("/recipes/search", r.recipeHandler.SearchRecipes)
		apiGroup.DELETE("/recipes/:id", r.recipeHandler.DeleteRecipe)

		apiGroup.POST("/recipes/:id/ingredients", r.recipeHandler.AddIngredient)
		apiGroup.GET("/recipes/:id/ingredients", r.recipeHandler.ListRecipeIngredients)
		apiGroup.DELETE("/recipes/:id/ingredients/:ingredientID", r.recipeHandler.RemoveIngredient)

		apiGroup.POST("/ingredients", r.recipeHandler.CreateIngredient)
		apiGroup.GET("/ingredients", r.recipeHandler.ListIngredients)
		apiGroup.DELETE("/ingredients/:id", r.recipeHandler.DeleteIngredient)
	}
}
