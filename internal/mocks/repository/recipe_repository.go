package repository

import (
	"context"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock implementation of repository.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateAuthor(ctx context.Context, author *entity.Author) error {
	args := m.Called(ctx, author)

	return args.Error(0)
}

func (m *MockRecipeRepository) FindAuthorByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Author), args.Error(1)
}

func (m *MockRecipeRepository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Author), args.Error(1)
}

func (m *MockRecipeRepository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)

	return args.Error(0)
}

func (m *MockRecipeRepository) FindRecipeByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRecipeRepository) CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	args := m.Called(ctx, ingredient)

	return args.Error(0)
}

func (m *MockRecipeRepository) FindIngredientByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Ingredient), args.Error(1)
}

func (m *MockRecipeRepository) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Ingredient), args.Error(1)
}

func (m *MockRecipeRepository) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockRecipeRepository) AddIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity decimal.Decimal) error {
	args := m.Called(ctx, recipeID, ingredientID, quantity)

	return args.Error(0)
}

func (m *MockRecipeRepository) RemoveIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) error {
	args := m.Called(ctx, recipeID, ingredientID)

	return args.Error(0)
}

func (m *MockRecipeRepository) RecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeIngredient, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.RecipeIngredient), args.Error(1)
}
