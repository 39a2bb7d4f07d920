package domain

// Tag is a named label a user attaches to recipes.
// (user_id, name) is unique; tags are shared by reference across the
// user's recipes and outlive any single recipe.
type Tag struct {
	ID     int64  `json:"id" db:"id"`
	UserID string `json:"-" db:"user_id"`
	Name   string `json:"name" db:"name"`
}

// UpdateTagRequest is the request body for renaming a tag.
type UpdateTagRequest struct {
	Name string `json:"name"`
}
