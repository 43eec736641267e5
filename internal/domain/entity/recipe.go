package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Author is the credited writer of a recipe.
type Author struct {
	ID        uuid.UUID
	Name      string // Unique.
	CreatedAt time.Time
}

// Recipe belongs to exactly one author. Deleting the author deletes its recipes.
type Recipe struct {
	ID        uuid.UUID
	Name      string    // Unique.
	AuthorID  uuid.UUID // Owning author.
	CreatedAt time.Time
}

// Ingredient is a named ingredient with a free-form unit of measure
// ("grams", "pieces", ...).
type Ingredient struct {
	ID        uuid.UUID
	Name      string // Unique.
	Unit      string
	CreatedAt time.Time
}

// RecipeIngredient links one ingredient to one recipe with a quantity.
// An ingredient appears at most once per recipe; deleting either side
// deletes the link.
type RecipeIngredient struct {
	RecipeID     uuid.UUID
	IngredientID uuid.UUID
	Quantity     decimal.Decimal // NUMERIC(10,2), two fractional digits.
}
