package domain

import "github.com/shopspring/decimal"

// Recipe is a user-owned recipe with many-to-many links to the user's
// tag and ingredient catalogs. Association rows are owned by the recipe;
// the tags/ingredients themselves are not.
type Recipe struct {
	ID          int64           `json:"id" db:"id"`
	UserID      string          `json:"-" db:"user_id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	TimeMinutes int             `json:"time_minutes" db:"time_minutes"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Link        string          `json:"link" db:"link"`
	Tags        []*Tag          `json:"tags" db:"-"`        // Stored in recipe_tags
	Ingredients []*Ingredient   `json:"ingredients" db:"-"` // Stored in recipe_ingredients
}

// NameRef references a catalog entry by name in a recipe payload.
// Unknown names are created for the user as a side effect.
type NameRef struct {
	Name string `json:"name"`
}

// CreateRecipeRequest is the request body for creating a recipe.
type CreateRecipeRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link,omitempty"`
	Tags        []NameRef       `json:"tags,omitempty"`
	Ingredients []NameRef       `json:"ingredients,omitempty"`
}

// UpdateRecipeRequest is the request body for updating a recipe.
// Nil fields are left untouched. A non-nil Tags or Ingredients slice,
// including an empty one, replaces the whole association set.
type UpdateRecipeRequest struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	TimeMinutes *int             `json:"time_minutes,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Link        *string          `json:"link,omitempty"`
	Tags        *[]NameRef       `json:"tags,omitempty"`
	Ingredients *[]NameRef       `json:"ingredients,omitempty"`
}
