package usecase

import (
	"context"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateRecipeInput defines the data required to create a recipe.
type CreateRecipeInput struct {
	Name     string
	AuthorID uuid.UUID
}

// CreateIngredientInput defines the data required to create an ingredient.
type CreateIngredientInput struct {
	Name string
	Unit string
}

// AddIngredientInput links an ingredient to a recipe with a quantity.
type AddIngredientInput struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}

// RecipeUsecase defines the recipe bookkeeping operations. Expected
// conflicts and misses surface as domain errors the delivery layer maps
// to HTTP statuses.
type RecipeUsecase interface {
	CreateAuthor(ctx context.Context, name string) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error

	CreateIngredient(ctx context.Context, input *CreateIngredientInput) (*entity.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error

	AddIngredient(ctx context.Context, input *AddIngredientInput) error
	RemoveIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) error
	RecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeIngredient, error)

	// SearchByIngredients filters recipes cookable from the given
	// ingredients for a number of people. Not implemented yet.
	SearchByIngredients(ctx context.Context, persons int, ingredientNames []string) ([]*entity.Recipe, error)

	// SearchByName looks a recipe up by name. Not implemented yet.
	SearchByName(ctx context.Context, name string) (*entity.Recipe, error)
}
