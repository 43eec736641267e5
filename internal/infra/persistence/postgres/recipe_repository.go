package postgres

import (
	"context"

	"lazycook/internal/domain/entity"
	domainerrors "lazycook/internal/domain/errors"
	"lazycook/internal/domain/repository"
	"lazycook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// --- Authors ---

func (repo *recipeRepository) CreateAuthor(ctx context.Context, author *entity.Author) error {
	authorM := &model.AuthorModel{ID: author.ID, Name: author.Name}
	if authorM.ID == uuid.Nil {
		authorM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAuthorNameTaken.WrapMessage("author name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt

	return nil
}

func (repo *recipeRepository) FindAuthorByID(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	var authorM model.AuthorModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&authorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return toAuthorDomain(&authorM), nil
}

func (repo *recipeRepository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	var authorMs []model.AuthorModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&authorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	authors := make([]*entity.Author, 0, len(authorMs))
	for i := range authorMs {
		authors = append(authors, toAuthorDomain(&authorMs[i]))
	}

	return authors, nil
}

// DeleteAuthor removes an author; recipes and their association rows
// cascade at the schema level.
func (repo *recipeRepository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AuthorModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete author")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorNotFound
	}

	return nil
}

// --- Recipes ---

func (repo *recipeRepository) CreateRecipe(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := &model.RecipeModel{ID: recipe.ID, Name: recipe.Name, AuthorID: recipe.AuthorID}
	if recipeM.ID == uuid.Nil {
		recipeM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRecipeNameTaken.WrapMessage("recipe name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAuthorNotFound.WrapMessage("recipe references missing author")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt

	return nil
}

func (repo *recipeRepository) FindRecipeByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&recipeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

func (repo *recipeRepository) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeMs []model.RecipeModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&recipeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeMs))
	for i := range recipeMs {
		recipes = append(recipes, toRecipeDomain(&recipeMs[i]))
	}

	return recipes, nil
}

func (repo *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Ingredients ---

func (repo *recipeRepository) CreateIngredient(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := &model.IngredientModel{ID: ingredient.ID, Name: ingredient.Name, Unit: ingredient.Unit}
	if ingredientM.ID == uuid.Nil {
		ingredientM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIngredientNameTaken.WrapMessage("ingredient name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt

	return nil
}

func (repo *recipeRepository) FindIngredientByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ingredientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&ingredientM), nil
}

func (repo *recipeRepository) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientMs []model.IngredientModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&ingredientMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientMs))
	for i := range ingredientMs {
		ingredients = append(ingredients, toIngredientDomain(&ingredientMs[i]))
	}

	return ingredients, nil
}

func (repo *recipeRepository) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.IngredientModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

// --- Associations ---

func (repo *recipeRepository) AddIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID, quantity decimal.Decimal) error {
	linkM := &model.RecipeIngredientModel{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Quantity:     quantity,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIngredientAlreadyInRecipe.WrapMessage("ingredient already linked to recipe")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntegrityViolation.WrapMessage("association references missing recipe or ingredient")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add ingredient to recipe")
	}

	return nil
}

func (repo *recipeRepository) RemoveIngredient(ctx context.Context, recipeID, ingredientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&model.RecipeIngredientModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove ingredient from recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

func (repo *recipeRepository) RecipeIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.RecipeIngredient, error) {
	var linkMs []model.RecipeIngredientModel
	err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&linkMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipe ingredients")
	}

	links := make([]*entity.RecipeIngredient, 0, len(linkMs))
	for i := range linkMs {
		links = append(links, &entity.RecipeIngredient{
			RecipeID:     linkMs[i].RecipeID,
			IngredientID: linkMs[i].IngredientID,
			Quantity:     linkMs[i].Quantity,
		})
	}

	return links, nil
}

// --- Mapper Functions ---

func toAuthorDomain(data *model.AuthorModel) *entity.Author {
	return &entity.Author{ID: data.ID, Name: data.Name, CreatedAt: data.CreatedAt}
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	return &entity.Recipe{ID: data.ID, Name: data.Name, AuthorID: data.AuthorID, CreatedAt: data.CreatedAt}
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	return &entity.Ingredient{ID: data.ID, Name: data.Name, Unit: data.Unit, CreatedAt: data.CreatedAt}
}
