package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"lazycook/internal/domain/entity"
	"lazycook/internal/domain/repository"
	"lazycook/internal/infra/auth"
	"lazycook/internal/infra/persistence/model"
	"lazycook/internal/usecase"
	"lazycook/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dsnEnv points these tests at a throwaway database, e.g.
// "host=localhost user=postgres password=postgres dbname=lazycook_test sslmode=disable".
// Without it they skip, so the regular unit run stays hermetic.
const dsnEnv = "LAZYCOOK_TEST_POSTGRES_DSN"

// newIntegrationDB opens a connection with the same GORM options as the
// production client and recreates the schema from scratch.
func newIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("set %s to run schema integration tests", dsnEnv)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	// Children before parents, so the drops never trip over foreign keys.
	err = db.Migrator().DropTable(
		&model.RecipeIngredientModel{},
		&model.RecipeModel{},
		&model.IngredientModel{},
		&model.AuthorModel{},
		&model.ProfileModel{},
		&model.AccountModel{},
	)
	require.NoError(t, err)
	require.NoError(t, InitSchema(context.Background(), db))

	return db
}

func TestIntegration_AccountDeleteCascadesProfile(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()
	accountRepo := NewAccountRepository(db)
	profileRepo := NewProfileRepository(db)

	account := &entity.Account{
		Email:        "anna@example.com",
		PasswordHash: "secret-b64",
		Salt:         "salt-b64",
	}
	require.NoError(t, accountRepo.Create(ctx, account))
	require.NoError(t, profileRepo.Create(ctx, &entity.Profile{
		Name:      "Anna",
		AccountID: account.ID,
	}))

	require.NoError(t, accountRepo.Delete(ctx, account.ID))

	_, err := profileRepo.FindByAccountID(ctx, account.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	// The row is gone, so a second delete reports a miss.
	assert.ErrorIs(t, accountRepo.Delete(ctx, account.ID), repository.ErrAccountNotFound)
}

func TestIntegration_AuthorDeleteCascadesRecipes(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()
	recipeRepo := NewRecipeRepository(db)

	author := &entity.Author{Name: "Oma Erna"}
	require.NoError(t, recipeRepo.CreateAuthor(ctx, author))

	recipe := &entity.Recipe{Name: "Kartoffelsuppe", AuthorID: author.ID}
	require.NoError(t, recipeRepo.CreateRecipe(ctx, recipe))

	ingredient := &entity.Ingredient{Name: "Kartoffel", Unit: "grams"}
	require.NoError(t, recipeRepo.CreateIngredient(ctx, ingredient))
	require.NoError(t, recipeRepo.AddIngredient(ctx, recipe.ID, ingredient.ID, decimal.NewFromInt(500)))

	require.NoError(t, recipeRepo.DeleteAuthor(ctx, author.ID))

	_, err := recipeRepo.FindRecipeByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, repository.ErrRecipeNotFound)
	assert.Equal(t, int64(0), countLinks(t, db))

	// The ingredient itself survives; only the links go with the recipe.
	_, err = recipeRepo.FindIngredientByID(ctx, ingredient.ID)
	assert.NoError(t, err)
}

func TestIntegration_RecipeAndIngredientDeleteCascadeLinks(t *testing.T) {
	db := newIntegrationDB(t)
	ctx := context.Background()
	recipeRepo := NewRecipeRepository(db)

	author := &entity.Author{Name: "Oma Erna"}
	require.NoError(t, recipeRepo.CreateAuthor(ctx, author))
	ingredient := &entity.Ingredient{Name: "Zwiebel", Unit: "pieces"}
	require.NoError(t, recipeRepo.CreateIngredient(ctx, ingredient))

	recipe := &entity.Recipe{Name: "Zwiebelkuchen", AuthorID: author.ID}
	require.NoError(t, recipeRepo.CreateRecipe(ctx, recipe))
	require.NoError(t, recipeRepo.AddIngredient(ctx, recipe.ID, ingredient.ID, decimal.NewFromInt(2)))
	require.NoError(t, recipeRepo.DeleteRecipe(ctx, recipe.ID))
	assert.Equal(t, int64(0), countLinks(t, db))

	recipe = &entity.Recipe{Name: "Zwiebelsuppe", AuthorID: author.ID}
	require.NoError(t, recipeRepo.CreateRecipe(ctx, recipe))
	require.NoError(t, recipeRepo.AddIngredient(ctx, recipe.ID, ingredient.ID, decimal.NewFromInt(3)))
	require.NoError(t, recipeRepo.DeleteIngredient(ctx, ingredient.ID))
	assert.Equal(t, int64(0), countLinks(t, db))

	// The recipe side of the second link is untouched.
	_, err := recipeRepo.FindRecipeByID(ctx, recipe.ID)
	assert.NoError(t, err)
}

// TestIntegration_ConcurrentRegistrationSameEmail drives two full
// registrations for one email through the real transaction manager at
// the same time; the unique constraint on konto.email guarantees that
// exactly one of them wins.
func TestIntegration_ConcurrentRegistrationSameEmail(t *testing.T) {
	db := newIntegrationDB(t)

	svc := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:   NewTransactionManager(db),
		AccountRepo: NewAccountRepository(db),
		ProfileRepo: NewProfileRepository(db),
		Hasher:      auth.NewPBKDF2HasherWithIterations(auth.MinHashIterations),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	outcomes := make([]usecase.RegisterOutcome, 2)
	var wg sync.WaitGroup
	for i := range outcomes {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			result := svc.Register(context.Background(), &usecase.RegisterInput{
				Email:    "race@example.com",
				Password: "pw",
				Name:     "Racer",
			})
			outcomes[slot] = result.Outcome
		}(i)
	}
	wg.Wait()

	succeeded, taken := 0, 0
	for _, outcome := range outcomes {
		switch outcome {
		case usecase.RegisterSucceeded:
			succeeded++
		case usecase.RegisterEmailTaken:
			taken++
		default:
			t.Fatalf("unexpected outcome %q", outcome)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, taken)

	var count int64
	require.NoError(t, db.Model(&model.AccountModel{}).
		Where("email = ?", "race@example.com").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func countLinks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.RecipeIngredientModel{}).Count(&count).Error)

	return count
}
