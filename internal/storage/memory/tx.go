package memory

import (
	"context"

	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
)

// Tx is a no-op transaction for the in-memory store.
type Tx struct {
	store *Store
}

func (t *Tx) Commit() error   { return nil }
func (t *Tx) Rollback() error { return nil }
func (t *Tx) Close() error    { return nil }
func (t *Tx) BeginTx(ctx context.Context) (storage.Transaction, error) {
	return nil, domain.ErrInvalidInput
}

// Forward all Tx methods to the underlying store
func (t *Tx) CreateUser(ctx context.Context, user *domain.User) error {
	return t.store.CreateUser(ctx, user)
}
func (t *Tx) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return t.store.GetUser(ctx, id)
}
func (t *Tx) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return t.store.GetUserByEmail(ctx, email)
}
func (t *Tx) UpdateUser(ctx context.Context, user *domain.User) error {
	return t.store.UpdateUser(ctx, user)
}
func (t *Tx) DeleteUser(ctx context.Context, id string) error {
	return t.store.DeleteUser(ctx, id)
}
func (t *Tx) CreateAuthToken(ctx context.Context, token *domain.AuthToken) error {
	return t.store.CreateAuthToken(ctx, token)
}
func (t *Tx) GetAuthTokenByHash(ctx context.Context, tokenHash string) (*domain.AuthToken, error) {
	return t.store.GetAuthTokenByHash(ctx, tokenHash)
}
func (t *Tx) UpdateAuthTokenLastUsed(ctx context.Context, id string) error {
	return t.store.UpdateAuthTokenLastUsed(ctx, id)
}
func (t *Tx) CreateTag(ctx context.Context, tag *domain.Tag) error {
	return t.store.CreateTag(ctx, tag)
}
func (t *Tx) GetTag(ctx context.Context, userID string, id int64) (*domain.Tag, error) {
	return t.store.GetTag(ctx, userID, id)
}
func (t *Tx) GetTagByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	return t.store.GetTagByName(ctx, userID, name)
}
func (t *Tx) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	return t.store.ListTags(ctx, userID)
}
func (t *Tx) UpdateTag(ctx context.Context, tag *domain.Tag) error {
	return t.store.UpdateTag(ctx, tag)
}
func (t *Tx) DeleteTag(ctx context.Context, userID string, id int64) error {
	return t.store.DeleteTag(ctx, userID, id)
}
func (t *Tx) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return t.store.CreateIngredient(ctx, ingredient)
}
func (t *Tx) GetIngredient(ctx context.Context, userID string, id int64) (*domain.Ingredient, error) {
	return t.store.GetIngredient(ctx, userID, id)
}
func (t *Tx) GetIngredientByName(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	return t.store.GetIngredientByName(ctx, userID, name)
}
func (t *Tx) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	return t.store.ListIngredients(ctx, userID)
}
func (t *Tx) UpdateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return t.store.UpdateIngredient(ctx, ingredient)
}
func (t *Tx) DeleteIngredient(ctx context.Context, userID string, id int64) error {
	return t.store.DeleteIngredient(ctx, userID, id)
}
func (t *Tx) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return t.store.CreateRecipe(ctx, recipe)
}
func (t *Tx) GetRecipe(ctx context.Context, userID string, id int64) (*domain.Recipe, error) {
	return t.store.GetRecipe(ctx, userID, id)
}
func (t *Tx) ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	return t.store.ListRecipes(ctx, userID)
}
func (t *Tx) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return t.store.UpdateRecipe(ctx, recipe)
}
func (t *Tx) DeleteRecipe(ctx context.Context, userID string, id int64) error {
	return t.store.DeleteRecipe(ctx, userID, id)
}
func (t *Tx) AddRecipeTag(ctx context.Context, recipeID, tagID int64) error {
	return t.store.AddRecipeTag(ctx, recipeID, tagID)
}
func (t *Tx) ClearRecipeTags(ctx context.Context, recipeID int64) error {
	return t.store.ClearRecipeTags(ctx, recipeID)
}
func (t *Tx) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	return t.store.AddRecipeIngredient(ctx, recipeID, ingredientID)
}
func (t *Tx) ClearRecipeIngredients(ctx context.Context, recipeID int64) error {
	return t.store.ClearRecipeIngredients(ctx, recipeID)
}
