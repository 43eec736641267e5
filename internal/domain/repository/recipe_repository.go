package repository

import (
	"context"
	"errors"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lookup misses for recipe bookkeeping. Normal outcomes, not faults.
var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// RecipeRepository defines persistence operations for authors, recipes,
// ingredients and the recipe-ingredient associations.
type RecipeRepository interface {
	CreateAuthor(ctx context.Context, author *entity.Author) error
	FindAuthorByID(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	// DeleteAuthor cascades to the author's recipes and their associations.
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	CreateRecipe(ctx context.Context, recipe *entity.Recipe) error
	FindRecipeByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)
	// DeleteRecipe cascades to the recipe's association rows.
	DeleteRecipe(ctx context.Context, id uuid.UUID) error

	CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error
	FindIngredientByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)
	// DeleteIngredient cascades to the ingredient's association rows.
	DeleteIngredient(ctx context.Context, id uuid.UUID) error

	// AddIngredient links an ingredient to a recipe with a quantity. The
	// pair is unique; a second link surfaces as
	// domainerrors.ErrIngredientAlreadyInRecipe.
	AddIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity decimal.Decimal) error
	RemoveIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) error
	RecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeIngredient, error)
}
