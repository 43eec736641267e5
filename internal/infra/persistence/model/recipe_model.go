package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorModel mirrors the 'verfasser' table.
type AuthorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;unique;not null"`
	CreatedAt time.Time

	Recipes []RecipeModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "verfasser"
}

// RecipeModel mirrors the 'rezept' table. AuthorID references
// verfasser.id; deleting the author cascades here.
type RecipeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;unique;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "rezept"
}

// IngredientModel mirrors the 'zutat' table.
type IngredientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;unique;not null"`
	Unit      string    `gorm:"type:varchar(30);not null"`
	CreatedAt time.Time

	Usages []RecipeIngredientModel `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "zutat"
}

// RecipeIngredientModel mirrors the 'besteht_aus' association table.
// The (recipe, ingredient) pair is unique; both foreign keys cascade.
type RecipeIngredientModel struct {
	RecipeID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_besteht_aus_recipe_ingredient"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_besteht_aus_recipe_ingredient"`
	Quantity     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "besteht_aus"
}
