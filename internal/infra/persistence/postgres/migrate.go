package postgres

import (
	"context"

	"lazycook/internal/errors"
	"lazycook/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// InitSchema idempotently creates the six tables of the schema. The
// whole batch runs in one transaction: on any failure everything rolls
// back and the error is surfaced to the caller.
func InitSchema(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&model.AccountModel{},
			&model.ProfileModel{},
			&model.AuthorModel{},
			&model.RecipeModel{},
			&model.IngredientModel{},
			&model.RecipeIngredientModel{},
		)
	})
	if err != nil {
		return errors.Wrap(err, "failed to initialize schema")
	}

	return nil
}
