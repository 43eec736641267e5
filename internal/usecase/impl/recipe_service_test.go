package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lazycook/internal/domain/entity"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/domain/repository"
	"lazycook/internal/usecase"
	mockrepo "lazycook/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixture struct {
	txManager  *mockrepo.MockTransactionManager
	recipeRepo *mockrepo.MockRecipeRepository
	service    usecase.RecipeUsecase
}

func newRecipeServiceFixture() *recipeServiceFixture {
	recipeRepo := new(mockrepo.MockRecipeRepository)
	txManager := &mockrepo.MockTransactionManager{
		Factory: &mockrepo.MockRepositoryFactory{Recipes: recipeRepo},
	}

	svc := NewRecipeService(txManager, recipeRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &recipeServiceFixture{
		txManager:  txManager,
		recipeRepo: recipeRepo,
		service:    svc,
	}
}

func TestRecipeService_CreateAuthor(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	f.recipeRepo.On("CreateAuthor", mock.Anything, mock.AnythingOfType("*entity.Author")).Return(nil)

	author, err := f.service.CreateAuthor(context.Background(), "  Oma Erna  ")

	require.NoError(t, err)
	assert.Equal(t, "Oma Erna", author.Name)
}

func TestRecipeService_CreateAuthor_EmptyName(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	_, err := f.service.CreateAuthor(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	f.recipeRepo.AssertNotCalled(t, "CreateAuthor", mock.Anything, mock.Anything)
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()
	authorID := uuid.New()

	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.recipeRepo.On("FindAuthorByID", mock.Anything, authorID).
		Return(&entity.Author{ID: authorID, Name: "Oma Erna"}, nil)
	f.recipeRepo.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	recipe, err := f.service.CreateRecipe(context.Background(), &usecase.CreateRecipeInput{
		Name:     "Kartoffelsuppe",
		AuthorID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Kartoffelsuppe", recipe.Name)
	assert.Equal(t, authorID, recipe.AuthorID)
}

func TestRecipeService_CreateRecipe_UnknownAuthor(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()
	authorID := uuid.New()

	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.recipeRepo.On("FindAuthorByID", mock.Anything, authorID).
		Return(nil, repository.ErrAuthorNotFound)

	_, err := f.service.CreateRecipe(context.Background(), &usecase.CreateRecipeInput{
		Name:     "Kartoffelsuppe",
		AuthorID: authorID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorNotFound)
	f.recipeRepo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
}

func TestRecipeService_CreateRecipe_InvalidInput(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	tests := []struct {
		name  string
		input *usecase.CreateRecipeInput
	}{
		{name: "nil input", input: nil},
		{name: "empty name", input: &usecase.CreateRecipeInput{AuthorID: uuid.New()}},
		{name: "missing author", input: &usecase.CreateRecipeInput{Name: "Suppe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateRecipe(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRecipeService_DeleteRecipe_NotFound(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()
	recipeID := uuid.New()

	f.recipeRepo.On("DeleteRecipe", mock.Anything, recipeID).
		Return(repository.ErrRecipeNotFound)

	err := f.service.DeleteRecipe(context.Background(), recipeID)

	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_CreateIngredient_InvalidInput(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	_, err := f.service.CreateIngredient(context.Background(), &usecase.CreateIngredientInput{
		Name: "Mehl",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecipeService_AddIngredient(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()
	recipeID := uuid.New()
	ingredientID := uuid.New()

	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.recipeRepo.On("FindRecipeByID", mock.Anything, recipeID).
		Return(&entity.Recipe{ID: recipeID}, nil)
	f.recipeRepo.On("FindIngredientByID", mock.Anything, ingredientID).
		Return(&entity.Ingredient{ID: ingredientID}, nil)
	// The quantity must arrive rounded to two fractional digits.
	f.recipeRepo.On("AddIngredient", mock.Anything, recipeID, ingredientID,
		decimal.RequireFromString("1.25")).Return(nil)

	err := f.service.AddIngredient(context.Background(), &usecase.AddIngredientInput{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     decimal.RequireFromString("1.251"),
	})

	require.NoError(t, err)
	f.recipeRepo.AssertExpectations(t)
}

func TestRecipeService_AddIngredient_NonPositiveQuantity(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	tests := []struct {
		name     string
		quantity decimal.Decimal
	}{
		{name: "zero", quantity: decimal.Zero},
		{name: "negative", quantity: decimal.RequireFromString("-0.5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.service.AddIngredient(context.Background(), &usecase.AddIngredientInput{
				RecipeID:     uuid.New(),
				IngredientID: uuid.New(),
				Quantity:     tt.quantity,
			})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRecipeService_AddIngredient_DuplicateLink(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()
	recipeID := uuid.New()
	ingredientID := uuid.New()

	f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
	f.recipeRepo.On("FindRecipeByID", mock.Anything, recipeID).
		Return(&entity.Recipe{ID: recipeID}, nil)
	f.recipeRepo.On("FindIngredientByID", mock.Anything, ingredientID).
		Return(&entity.Ingredient{ID: ingredientID}, nil)
	f.recipeRepo.On("AddIngredient", mock.Anything, recipeID, ingredientID, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrIngredientAlreadyInRecipe, "insert besteht_aus"))

	err := f.service.AddIngredient(context.Background(), &usecase.AddIngredientInput{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     decimal.NewFromInt(2),
	})

	assert.ErrorIs(t, err, domainerrors.ErrIngredientAlreadyInRecipe)
}

func TestRecipeService_Search_NotImplemented(t *testing.T) {
	t.Parallel()

	f := newRecipeServiceFixture()

	_, err := f.service.SearchByIngredients(context.Background(), 4, []string{"Mehl", "Milch"})
	assert.ErrorIs(t, err, domainerrors.ErrNotImplemented)

	_, err = f.service.SearchByName(context.Background(), "Kartoffelsuppe")
	assert.ErrorIs(t, err, domainerrors.ErrNotImplemented)
}
