package storage

import (
	"context"

	"github.com/kdriscoll/recipe-manager/internal/domain"
)

// Storage defines the interface for the storage layer.
// Implementations must be safe for concurrent use. Every query over
// user-owned data takes the owning user's id explicitly; there is no
// default scope, and an id owned by a different user behaves exactly
// like a missing id (domain.ErrNotFound).
type Storage interface {
	// Close closes the storage connection.
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	// DeleteUser removes the user and cascades to all tokens, recipes,
	// tags and ingredients the user owns.
	DeleteUser(ctx context.Context, id string) error

	// Auth tokens
	CreateAuthToken(ctx context.Context, token *domain.AuthToken) error
	GetAuthTokenByHash(ctx context.Context, tokenHash string) (*domain.AuthToken, error)
	UpdateAuthTokenLastUsed(ctx context.Context, id string) error

	// Tags. CreateTag returns domain.ErrAlreadyExists when (user, name)
	// is already taken; ListTags orders by name descending.
	CreateTag(ctx context.Context, tag *domain.Tag) error
	GetTag(ctx context.Context, userID string, id int64) (*domain.Tag, error)
	GetTagByName(ctx context.Context, userID, name string) (*domain.Tag, error)
	ListTags(ctx context.Context, userID string) ([]*domain.Tag, error)
	UpdateTag(ctx context.Context, tag *domain.Tag) error
	DeleteTag(ctx context.Context, userID string, id int64) error

	// Ingredients. Same contract as tags.
	CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error
	GetIngredient(ctx context.Context, userID string, id int64) (*domain.Ingredient, error)
	GetIngredientByName(ctx context.Context, userID, name string) (*domain.Ingredient, error)
	ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredient *domain.Ingredient) error
	DeleteIngredient(ctx context.Context, userID string, id int64) error

	// Recipes. CreateRecipe assigns recipe.ID; Get/List return recipes
	// with tag and ingredient associations loaded; ListRecipes orders by
	// id descending.
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	GetRecipe(ctx context.Context, userID string, id int64) (*domain.Recipe, error)
	ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, userID string, id int64) error

	// Recipe associations. Adding an existing association is a no-op;
	// clearing never touches the underlying catalog rows.
	AddRecipeTag(ctx context.Context, recipeID, tagID int64) error
	ClearRecipeTags(ctx context.Context, recipeID int64) error
	AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64) error
	ClearRecipeIngredients(ctx context.Context, recipeID int64) error

	// Transaction support
	BeginTx(ctx context.Context) (Transaction, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Storage
	Commit() error
	Rollback() error
}
