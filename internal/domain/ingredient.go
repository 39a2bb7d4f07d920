package domain

// Ingredient is a named catalog entry a user references from recipes.
// Same ownership and uniqueness rules as Tag.
type Ingredient struct {
	ID     int64  `json:"id" db:"id"`
	UserID string `json:"-" db:"user_id"`
	Name   string `json:"name" db:"name"`
}

// UpdateIngredientRequest is the request body for renaming an ingredient.
type UpdateIngredientRequest struct {
	Name string `json:"name"`
}
