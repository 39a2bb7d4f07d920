package sql

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
)

//go:embed migrations/sqlite3/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// isUniqueViolation checks if an error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// SQLite
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	// PostgreSQL
	if strings.Contains(errStr, "duplicate key value violates unique constraint") {
		return true
	}
	return false
}

// wrapUniqueError converts UNIQUE violations to domain.ErrAlreadyExists.
func wrapUniqueError(err error) error {
	if isUniqueViolation(err) {
		return domain.ErrAlreadyExists
	}
	return err
}

// Store implements the storage.Storage interface using SQL.
type Store struct {
	db     *sqlx.DB
	driver string
}

// New creates a new SQL store and runs pending migrations.
func New(driver, dsn string) (*Store, error) {
	if driver == "sqlite3" && !strings.Contains(dsn, "_foreign_keys") {
		// Association cleanup and owner-delete cascades rely on FK enforcement.
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Run migrations. The autoincrement DDL differs per engine, so each
	// dialect keeps its own migration directory.
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(driver); err != nil {
		return nil, fmt.Errorf("setting goose dialect: %w", err)
	}

	dir := "migrations/sqlite3"
	if driver == "postgres" {
		dir = "migrations/postgres"
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db, driver: driver}, nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginTx starts a new transaction.
func (s *Store) BeginTx(ctx context.Context) (storage.Transaction, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, driver: s.driver}, nil
}

// Tx wraps a database transaction.
type Tx struct {
	tx     *sqlx.Tx
	driver string
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// Close is a no-op for transactions (they should be committed or rolled back).
func (t *Tx) Close() error {
	return nil
}

// BeginTx is not supported within a transaction.
func (t *Tx) BeginTx(ctx context.Context) (storage.Transaction, error) {
	return nil, fmt.Errorf("nested transactions not supported")
}

// helper to get the correct database interface
type dbInterface interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ============================================
// Users
// ============================================

func createUser(ctx context.Context, db dbInterface, user *domain.User) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	return wrapUniqueError(err)
}

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	return createUser(ctx, s.db, user)
}

func (t *Tx) CreateUser(ctx context.Context, user *domain.User) error {
	return createUser(ctx, t.tx, user)
}

func getUser(ctx context.Context, db dbInterface, id string) (*domain.User, error) {
	var user domain.User
	err := db.GetContext(ctx, &user,
		`SELECT id, email, name, password_hash, created_at FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &user, err
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return getUser(ctx, s.db, id)
}

func (t *Tx) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return getUser(ctx, t.tx, id)
}

func getUserByEmail(ctx context.Context, db dbInterface, email string) (*domain.User, error) {
	var user domain.User
	err := db.GetContext(ctx, &user,
		`SELECT id, email, name, password_hash, created_at FROM users WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &user, err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getUserByEmail(ctx, s.db, email)
}

func (t *Tx) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getUserByEmail(ctx, t.tx, email)
}

func updateUser(ctx context.Context, db dbInterface, user *domain.User) error {
	result, err := db.ExecContext(ctx,
		`UPDATE users SET name = $1, password_hash = $2 WHERE id = $3`,
		user.Name, user.PasswordHash, user.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	return updateUser(ctx, s.db, user)
}

func (t *Tx) UpdateUser(ctx context.Context, user *domain.User) error {
	return updateUser(ctx, t.tx, user)
}

func deleteUser(ctx context.Context, db dbInterface, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return deleteUser(ctx, s.db, id)
}

func (t *Tx) DeleteUser(ctx context.Context, id string) error {
	return deleteUser(ctx, t.tx, id)
}

// ============================================
// Auth tokens
// ============================================

func createAuthToken(ctx context.Context, db dbInterface, token *domain.AuthToken) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO auth_tokens (id, user_id, token_hash, token_prefix, created_at, last_used_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		token.ID, token.UserID, token.TokenHash, token.TokenPrefix, token.CreatedAt, token.LastUsedAt)
	return err
}

func (s *Store) CreateAuthToken(ctx context.Context, token *domain.AuthToken) error {
	return createAuthToken(ctx, s.db, token)
}

func (t *Tx) CreateAuthToken(ctx context.Context, token *domain.AuthToken) error {
	return createAuthToken(ctx, t.tx, token)
}

func getAuthTokenByHash(ctx context.Context, db dbInterface, tokenHash string) (*domain.AuthToken, error) {
	var token domain.AuthToken
	err := db.GetContext(ctx, &token,
		`SELECT id, user_id, token_hash, token_prefix, created_at, last_used_at
		 FROM auth_tokens WHERE token_hash = $1`, tokenHash)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &token, err
}

func (s *Store) GetAuthTokenByHash(ctx context.Context, tokenHash string) (*domain.AuthToken, error) {
	return getAuthTokenByHash(ctx, s.db, tokenHash)
}

func (t *Tx) GetAuthTokenByHash(ctx context.Context, tokenHash string) (*domain.AuthToken, error) {
	return getAuthTokenByHash(ctx, t.tx, tokenHash)
}

func updateAuthTokenLastUsed(ctx context.Context, db dbInterface, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE auth_tokens SET last_used_at = $1 WHERE id = $2`, time.Now(), id)
	return err
}

func (s *Store) UpdateAuthTokenLastUsed(ctx context.Context, id string) error {
	return updateAuthTokenLastUsed(ctx, s.db, id)
}

func (t *Tx) UpdateAuthTokenLastUsed(ctx context.Context, id string) error {
	return updateAuthTokenLastUsed(ctx, t.tx, id)
}

// ============================================
// Tags
// ============================================

func createTag(ctx context.Context, db dbInterface, tag *domain.Tag) error {
	err := db.GetContext(ctx, &tag.ID,
		`INSERT INTO tags (user_id, name) VALUES ($1, $2) RETURNING id`,
		tag.UserID, tag.Name)
	return wrapUniqueError(err)
}

func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) error {
	return createTag(ctx, s.db, tag)
}

func (t *Tx) CreateTag(ctx context.Context, tag *domain.Tag) error {
	return createTag(ctx, t.tx, tag)
}

func getTag(ctx context.Context, db dbInterface, userID string, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	err := db.GetContext(ctx, &tag,
		`SELECT id, user_id, name FROM tags WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &tag, err
}

func (s *Store) GetTag(ctx context.Context, userID string, id int64) (*domain.Tag, error) {
	return getTag(ctx, s.db, userID, id)
}

func (t *Tx) GetTag(ctx context.Context, userID string, id int64) (*domain.Tag, error) {
	return getTag(ctx, t.tx, userID, id)
}

func getTagByName(ctx context.Context, db dbInterface, userID, name string) (*domain.Tag, error) {
	var tag domain.Tag
	err := db.GetContext(ctx, &tag,
		`SELECT id, user_id, name FROM tags WHERE user_id = $1 AND name = $2`, userID, name)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &tag, err
}

func (s *Store) GetTagByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	return getTagByName(ctx, s.db, userID, name)
}

func (t *Tx) GetTagByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	return getTagByName(ctx, t.tx, userID, name)
}

func listTags(ctx context.Context, db dbInterface, userID string) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := db.SelectContext(ctx, &tags,
		`SELECT id, user_id, name FROM tags WHERE user_id = $1 ORDER BY name DESC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *Store) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	return listTags(ctx, s.db, userID)
}

func (t *Tx) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	return listTags(ctx, t.tx, userID)
}

func updateTag(ctx context.Context, db dbInterface, tag *domain.Tag) error {
	result, err := db.ExecContext(ctx,
		`UPDATE tags SET name = $1 WHERE id = $2 AND user_id = $3`,
		tag.Name, tag.ID, tag.UserID)
	if err != nil {
		return wrapUniqueError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateTag(ctx context.Context, tag *domain.Tag) error {
	return updateTag(ctx, s.db, tag)
}

func (t *Tx) UpdateTag(ctx context.Context, tag *domain.Tag) error {
	return updateTag(ctx, t.tx, tag)
}

func deleteTag(ctx context.Context, db dbInterface, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM tags WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTag(ctx context.Context, userID string, id int64) error {
	return deleteTag(ctx, s.db, userID, id)
}

func (t *Tx) DeleteTag(ctx context.Context, userID string, id int64) error {
	return deleteTag(ctx, t.tx, userID, id)
}

// ============================================
// Ingredients
// ============================================

func createIngredient(ctx context.Context, db dbInterface, ingredient *domain.Ingredient) error {
	err := db.GetContext(ctx, &ingredient.ID,
		`INSERT INTO ingredients (user_id, name) VALUES ($1, $2) RETURNING id`,
		ingredient.UserID, ingredient.Name)
	return wrapUniqueError(err)
}

func (s *Store) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return createIngredient(ctx, s.db, ingredient)
}

func (t *Tx) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return createIngredient(ctx, t.tx, ingredient)
}

func getIngredient(ctx context.Context, db dbInterface, userID string, id int64) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := db.GetContext(ctx, &ingredient,
		`SELECT id, user_id, name FROM ingredients WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &ingredient, err
}

func (s *Store) GetIngredient(ctx context.Context, userID string, id int64) (*domain.Ingredient, error) {
	return getIngredient(ctx, s.db, userID, id)
}

func (t *Tx) GetIngredient(ctx context.Context, userID string, id int64) (*domain.Ingredient, error) {
	return getIngredient(ctx, t.tx, userID, id)
}

func getIngredientByName(ctx context.Context, db dbInterface, userID, name string) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := db.GetContext(ctx, &ingredient,
		`SELECT id, user_id, name FROM ingredients WHERE user_id = $1 AND name = $2`, userID, name)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return &ingredient, err
}

func (s *Store) GetIngredientByName(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	return getIngredientByName(ctx, s.db, userID, name)
}

func (t *Tx) GetIngredientByName(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	return getIngredientByName(ctx, t.tx, userID, name)
}

func listIngredients(ctx context.Context, db dbInterface, userID string) ([]*domain.Ingredient, error) {
	var ingredients []*domain.Ingredient
	err := db.SelectContext(ctx, &ingredients,
		`SELECT id, user_id, name FROM ingredients WHERE user_id = $1 ORDER BY name DESC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *Store) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	return listIngredients(ctx, s.db, userID)
}

func (t *Tx) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	return listIngredients(ctx, t.tx, userID)
}

func updateIngredient(ctx context.Context, db dbInterface, ingredient *domain.Ingredient) error {
	result, err := db.ExecContext(ctx,
		`UPDATE ingredients SET name = $1 WHERE id = $2 AND user_id = $3`,
		ingredient.Name, ingredient.ID, ingredient.UserID)
	if err != nil {
		return wrapUniqueError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return updateIngredient(ctx, s.db, ingredient)
}

func (t *Tx) UpdateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	return updateIngredient(ctx, t.tx, ingredient)
}

func deleteIngredient(ctx context.Context, db dbInterface, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM ingredients WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteIngredient(ctx context.Context, userID string, id int64) error {
	return deleteIngredient(ctx, s.db, userID, id)
}

func (t *Tx) DeleteIngredient(ctx context.Context, userID string, id int64) error {
	return deleteIngredient(ctx, t.tx, userID, id)
}

// ============================================
// Recipes
// ============================================

func createRecipe(ctx context.Context, db dbInterface, recipe *domain.Recipe) error {
	return db.GetContext(ctx, &recipe.ID,
		`INSERT INTO recipes (user_id, title, description, time_minutes, price, link)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		recipe.UserID, recipe.Title, recipe.Description, recipe.TimeMinutes, recipe.Price, recipe.Link)
}

func (s *Store) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return createRecipe(ctx, s.db, recipe)
}

func (t *Tx) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return createRecipe(ctx, t.tx, recipe)
}

func getRecipeTags(ctx context.Context, db dbInterface, recipeID int64) ([]*domain.Tag, error) {
	tags := []*domain.Tag{}
	err := db.SelectContext(ctx, &tags,
		`SELECT t.id, t.user_id, t.name FROM tags t
		 JOIN recipe_tags rt ON rt.tag_id = t.id
		 WHERE rt.recipe_id = $1 ORDER BY t.id ASC`, recipeID)
	return tags, err
}

func getRecipeIngredients(ctx context.Context, db dbInterface, recipeID int64) ([]*domain.Ingredient, error) {
	ingredients := []*domain.Ingredient{}
	err := db.SelectContext(ctx, &ingredients,
		`SELECT i.id, i.user_id, i.name FROM ingredients i
		 JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
		 WHERE ri.recipe_id = $1 ORDER BY i.id ASC`, recipeID)
	return ingredients, err
}

func getRecipe(ctx context.Context, db dbInterface, userID string, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := db.GetContext(ctx, &recipe,
		`SELECT id, user_id, title, description, time_minutes, price, link
		 FROM recipes WHERE id = $1 AND user_id = $2`, id, userID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if recipe.Tags, err = getRecipeTags(ctx, db, recipe.ID); err != nil {
		return nil, err
	}
	if recipe.Ingredients, err = getRecipeIngredients(ctx, db, recipe.ID); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *Store) GetRecipe(ctx context.Context, userID string, id int64) (*domain.Recipe, error) {
	return getRecipe(ctx, s.db, userID, id)
}

func (t *Tx) GetRecipe(ctx context.Context, userID string, id int64) (*domain.Recipe, error) {
	return getRecipe(ctx, t.tx, userID, id)
}

func listRecipes(ctx context.Context, db dbInterface, userID string) ([]*domain.Recipe, error) {
	var recipes []*domain.Recipe
	err := db.SelectContext(ctx, &recipes,
		`SELECT id, user_id, title, description, time_minutes, price, link
		 FROM recipes WHERE user_id = $1 ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	for _, r := range recipes {
		if r.Tags, err = getRecipeTags(ctx, db, r.ID); err != nil {
			return nil, err
		}
		if r.Ingredients, err = getRecipeIngredients(ctx, db, r.ID); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (s *Store) ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	return listRecipes(ctx, s.db, userID)
}

func (t *Tx) ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	return listRecipes(ctx, t.tx, userID)
}

func updateRecipe(ctx context.Context, db dbInterface, recipe *domain.Recipe) error {
	result, err := db.ExecContext(ctx,
		`UPDATE recipes SET title = $1, description = $2, time_minutes = $3, price = $4, link = $5
		 WHERE id = $6 AND user_id = $7`,
		recipe.Title, recipe.Description, recipe.TimeMinutes, recipe.Price, recipe.Link,
		recipe.ID, recipe.UserID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return updateRecipe(ctx, s.db, recipe)
}

func (t *Tx) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	return updateRecipe(ctx, t.tx, recipe)
}

func deleteRecipe(ctx context.Context, db dbInterface, userID string, id int64) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, userID string, id int64) error {
	return deleteRecipe(ctx, s.db, userID, id)
}

func (t *Tx) DeleteRecipe(ctx context.Context, userID string, id int64) error {
	return deleteRecipe(ctx, t.tx, userID, id)
}

// ============================================
// Recipe associations
// ============================================

func addRecipeTag(ctx context.Context, db dbInterface, recipeID, tagID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, recipeID, tagID)
	return err
}

func (s *Store) AddRecipeTag(ctx context.Context, recipeID, tagID int64) error {
	return addRecipeTag(ctx, s.db, recipeID, tagID)
}

func (t *Tx) AddRecipeTag(ctx context.Context, recipeID, tagID int64) error {
	return addRecipeTag(ctx, t.tx, recipeID, tagID)
}

func clearRecipeTags(ctx context.Context, db dbInterface, recipeID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM recipe_tags WHERE recipe_id = $1`, recipeID)
	return err
}

func (s *Store) ClearRecipeTags(ctx context.Context, recipeID int64) error {
	return clearRecipeTags(ctx, s.db, recipeID)
}

func (t *Tx) ClearRecipeTags(ctx context.Context, recipeID int64) error {
	return clearRecipeTags(ctx, t.tx, recipeID)
}

func addRecipeIngredient(ctx context.Context, db dbInterface, recipeID, ingredientID int64) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`, recipeID, ingredientID)
	return err
}

func (s *Store) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	return addRecipeIngredient(ctx, s.db, recipeID, ingredientID)
}

func (t *Tx) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	return addRecipeIngredient(ctx, t.tx, recipeID, ingredientID)
}

func clearRecipeIngredients(ctx context.Context, db dbInterface, recipeID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID)
	return err
}

func (s *Store) ClearRecipeIngredients(ctx context.Context, recipeID int64) error {
	return clearRecipeIngredients(ctx, s.db, recipeID)
}

func (t *Tx) ClearRecipeIngredients(ctx context.Context, recipeID int64) error {
	return clearRecipeIngredients(ctx, t.tx, recipeID)
}
