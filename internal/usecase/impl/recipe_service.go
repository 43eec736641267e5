package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "lazycook/internal/delivery/context"
	"lazycook/internal/domain/entity"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/domain/repository"
	"lazycook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(
	txManager repository.TransactionManager,
	recipeRepo repository.RecipeRepository,
	logger *slog.Logger,
) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  txManager,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recipeService) CreateAuthor(ctx context.Context, name string) (*entity.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "author name must not be empty")
	}

	author := &entity.Author{Name: name}
	if err := srv.recipeRepo.CreateAuthor(ctx, author); err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	srv.log(ctx).Debug("Author created", slog.Any("authorID", author.ID))

	return author, nil
}

func (srv *recipeService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.recipeRepo.ListAuthors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

func (srv *recipeService) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if err := srv.recipeRepo.DeleteAuthor(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			return errors.Wrap(domainerrors.ErrAuthorNotFound, "author does not exist")
		}

		return errors.Wrap(err, "failed to delete author")
	}

	srv.log(ctx).Info("Author deleted", slog.Any("authorID", id))

	return nil
}

func (srv *recipeService) CreateRecipe(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || input.AuthorID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "recipe name and author are required")
	}

	recipe := &entity.Recipe{Name: strings.TrimSpace(input.Name), AuthorID: input.AuthorID}

	// Author existence check and insert share one transaction so a
	// concurrently deleted author cannot leave an orphan recipe.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		if _, err := recipeRepo.FindAuthorByID(ctx, input.AuthorID); err != nil {
			if errors.Is(err, repository.ErrAuthorNotFound) {
				return errors.Wrap(domainerrors.ErrAuthorNotFound, "recipe author does not exist")
			}

			return errors.Wrap(err, "failed to load author")
		}

		return recipeRepo.CreateRecipe(ctx, recipe)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", recipe.ID))

	return recipe, nil
}

func (srv *recipeService) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListRecipes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *recipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if err := srv.recipeRepo.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe does not exist")
		}

		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Any("recipeID", id))

	return nil
}

func (srv *recipeService) CreateIngredient(ctx context.Context, input *usecase.CreateIngredientInput) (*entity.Ingredient, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Unit) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "ingredient name and unit are required")
	}

	ingredient := &entity.Ingredient{
		Name: strings.TrimSpace(input.Name),
		Unit: strings.TrimSpace(input.Unit),
	}
	if err := srv.recipeRepo.CreateIngredient(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	srv.log(ctx).Debug("Ingredient created", slog.Any("ingredientID", ingredient.ID))

	return ingredient, nil
}

func (srv *recipeService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := srv.recipeRepo.ListIngredients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

func (srv *recipeService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	if err := srv.recipeRepo.DeleteIngredient(ctx, id); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return errors.Wrap(domainerrors.ErrIngredientNotFound, "ingredient does not exist")
		}

		return errors.Wrap(err, "failed to delete ingredient")
	}

	srv.log(ctx).Info("Ingredient deleted", slog.Any("ingredientID", id))

	return nil
}

func (srv *recipeService) AddIngredient(ctx context.Context, input *usecase.AddIngredientInput) error {
	if input == nil || input.RecipeID == uuid.Nil || input.IngredientID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "recipe and ingredient are required")
	}
	if input.Quantity.IsNegative() || input.Quantity.IsZero() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}

	// Two fractional digits, matching the NUMERIC(10,2) column.
	quantity := input.Quantity.Round(2)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.RecipeRepo()

		if _, err := recipeRepo.FindRecipeByID(ctx, input.RecipeID); err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return errors.Wrap(domainerrors.ErrRecipeNotFound, "recipe does not exist")
			}

			return errors.Wrap(err, "failed to load recipe")
		}
		if _, err := recipeRepo.FindIngredientByID(ctx, input.IngredientID); err != nil {
			if errors.Is(err, repository.ErrIngredientNotFound) {
				return errors.Wrap(domainerrors.ErrIngredientNotFound, "ingredient does not exist")
			}

			return errors.Wrap(err, "failed to load ingredient")
		}

		return recipeRepo.AddIngredient(ctx, input.RecipeID, input.IngredientID, quantity)
	})
	if err != nil {
		return errors.Wrap(err, "failed to add ingredient to recipe")
	}

	srv.log(ctx).Debug("Ingredient linked to recipe",
		slog.Any("recipeID", input.RecipeID), slog.Any("ingredientID", input.IngredientID))

	return nil
}

func (srv *recipeService) RemoveIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) error {
	if err := srv.recipeRepo.RemoveIngredient(ctx, recipeID, ingredientID); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return errors.Wrap(domainerrors.ErrIngredientNotFound, "ingredient is not linked to recipe")
		}

		return errors.Wrap(err, "failed to remove ingredient from recipe")
	}

	return nil
}

func (srv *recipeService) RecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeIngredient, error) {
	links, err := srv.recipeRepo.RecipeIngredients(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe ingredients")
	}

	return links, nil
}

// SearchByIngredients is not implemented yet.
// TODO: implement once the portion scaling rules are settled.
func (srv *recipeService) SearchByIngredients(_ context.Context, _ int, _ []string) ([]*entity.Recipe, error) {
	return nil, errors.WithStack(domainerrors.ErrNotImplemented)
}

// SearchByName is not implemented yet.
func (srv *recipeService) SearchByName(_ context.Context, _ string) (*entity.Recipe, error) {
	return nil, errors.WithStack(domainerrors.ErrNotImplemented)
}
