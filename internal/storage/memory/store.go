package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
)

// Store is an in-memory implementation of the storage interface for testing.
// It enforces the same uniqueness and ownership rules as the SQL store,
// including the (user, name) constraints and owner-delete cascades.
type Store struct {
	mu sync.RWMutex

	users  map[string]*domain.User      // key: id
	tokens map[string]*domain.AuthToken // key: token hash

	tags        map[int64]*domain.Tag
	ingredients map[int64]*domain.Ingredient
	recipes     map[int64]*domain.Recipe

	recipeTags        map[int64]map[int64]bool // recipe id -> tag id set
	recipeIngredients map[int64]map[int64]bool // recipe id -> ingredient id set

	nextTagID        int64
	nextIngredientID int64
	nextRecipeID     int64
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		users:             make(map[string]*domain.User),
		tokens:            make(map[string]*domain.AuthToken),
		tags:              make(map[int64]*domain.Tag),
		ingredients:       make(map[int64]*domain.Ingredient),
		recipes:           make(map[int64]*domain.Recipe),
		recipeTags:        make(map[int64]map[int64]bool),
		recipeIngredients: make(map[int64]map[int64]bool),
	}
}

func (s *Store) Close() error { return nil }

func (s *Store) BeginTx(ctx context.Context) (storage.Transaction, error) {
	return &Tx{store: s}, nil
}

// ============================================
// Users
// ============================================

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.users, id)

	// Cascade, matching the SQL store's ON DELETE CASCADE behavior.
	for hash, token := range s.tokens {
		if token.UserID == id {
			delete(s.tokens, hash)
		}
	}
	for rid, r := range s.recipes {
		if r.UserID == id {
			delete(s.recipes, rid)
			delete(s.recipeTags, rid)
			delete(s.recipeIngredients, rid)
		}
	}
	for tid, t := range s.tags {
		if t.UserID == id {
			delete(s.tags, tid)
		}
	}
	for iid, i := range s.ingredients {
		if i.UserID == id {
			delete(s.ingredients, iid)
		}
	}
	return nil
}

// ============================================
// Auth tokens
// ============================================

func (s *Store) CreateAuthToken(ctx context.Context, token *domain.AuthToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *token
	s.tokens[token.TokenHash] = &cp
	return nil
}

func (s *Store) GetAuthTokenByHash(ctx context.Context, tokenHash string) (*domain.AuthToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *token
	return &cp, nil
}

func (s *Store) UpdateAuthTokenLastUsed(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, token := range s.tokens {
		if token.ID == id {
			now := time.Now()
			token.LastUsedAt = &now
			return nil
		}
	}
	return domain.ErrNotFound
}

// ============================================
// Tags
// ============================================

func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags {
		if t.UserID == tag.UserID && t.Name == tag.Name {
			return domain.ErrAlreadyExists
		}
	}
	s.nextTagID++
	tag.ID = s.nextTagID
	cp := *tag
	s.tags[tag.ID] = &cp
	return nil
}

func (s *Store) GetTag(ctx context.Context, userID string, id int64) (*domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tag, ok := s.tags[id]
	if !ok || tag.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *tag
	return &cp, nil
}

func (s *Store) GetTagByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tags {
		if t.UserID == userID && t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := []*domain.Tag{}
	for _, t := range s.tags {
		if t.UserID == userID {
			cp := *t
			tags = append(tags, &cp)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Name != tags[j].Name {
			return tags[i].Name > tags[j].Name
		}
		return tags[i].ID < tags[j].ID
	})
	return tags, nil
}

func (s *Store) UpdateTag(ctx context.Context, tag *domain.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tags[tag.ID]
	if !ok || existing.UserID != tag.UserID {
		return domain.ErrNotFound
	}
	for _, t := range s.tags {
		if t.ID != tag.ID && t.UserID == tag.UserID && t.Name == tag.Name {
			return domain.ErrAlreadyExists
		}
	}
	existing.Name = tag.Name
	return nil
}

func (s *Store) DeleteTag(ctx context.Context, userID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag, ok := s.tags[id]
	if !ok || tag.UserID != userID {
		return domain.ErrNotFound
	}
	delete(s.tags, id)
	for _, set := range s.recipeTags {
		delete(set, id)
	}
	return nil
}

// ============================================
// Ingredients
// ============================================

func (s *Store) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, i := range s.ingredients {
		if i.UserID == ingredient.UserID && i.Name == ingredient.Name {
			return domain.ErrAlreadyExists
		}
	}
	s.nextIngredientID++
	ingredient.ID = s.nextIngredientID
	cp := *ingredient
	s.ingredients[ingredient.ID] = &cp
	return nil
}

func (s *Store) GetIngredient(ctx context.Context, userID string, id int64) (*domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ingredient, ok := s.ingredients[id]
	if !ok || ingredient.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *ingredient
	return &cp, nil
}

func (s *Store) GetIngredientByName(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, i := range s.ingredients {
		if i.UserID == userID && i.Name == name {
			cp := *i
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ingredients := []*domain.Ingredient{}
	for _, i := range s.ingredients {
		if i.UserID == userID {
			cp := *i
			ingredients = append(ingredients, &cp)
		}
	}
	sort.Slice(ingredients, func(i, j int) bool {
		if ingredients[i].Name != ingredients[j].Name {
			return ingredients[i].Name > ingredients[j].Name
		}
		return ingredients[i].ID < ingredients[j].ID
	})
	return ingredients, nil
}

func (s *Store) UpdateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.ingredients[ingredient.ID]
	if !ok || existing.UserID != ingredient.UserID {
		return domain.ErrNotFound
	}
	for _, i := range s.ingredients {
		if i.ID != ingredient.ID && i.UserID == ingredient.UserID && i.Name == ingredient.Name {
			return domain.ErrAlreadyExists
		}
	}
	existing.Name = ingredient.Name
	return nil
}

func (s *Store) DeleteIngredient(ctx context.Context, userID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ingredient, ok := s.ingredients[id]
	if !ok || ingredient.UserID != userID {
		return domain.ErrNotFound
	}
	delete(s.ingredients, id)
	for _, set := range s.recipeIngredients {
		delete(set, id)
	}
	return nil
}

// ============================================
// Recipes
// ============================================

func (s *Store) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRecipeID++
	recipe.ID = s.nextRecipeID
	cp := *recipe
	cp.Tags = nil
	cp.Ingredients = nil
	s.recipes[recipe.ID] = &cp
	s.recipeTags[recipe.ID] = make(map[int64]bool)
	s.recipeIngredients[recipe.ID] = make(map[int64]bool)
	return nil
}

// loadRecipe assembles a copy of the recipe with associations attached.
// Caller must hold at least a read lock.
func (s *Store) loadRecipe(recipe *domain.Recipe) *domain.Recipe {
	cp := *recipe
	cp.Tags = []*domain.Tag{}
	cp.Ingredients = []*domain.Ingredient{}

	var tagIDs []int64
	for id := range s.recipeTags[recipe.ID] {
		tagIDs = append(tagIDs, id)
	}
	sort.Slice(tagIDs, func(i, j int) bool { return tagIDs[i] < tagIDs[j] })
	for _, id := range tagIDs {
		if t, ok := s.tags[id]; ok {
			tcp := *t
			cp.Tags = append(cp.Tags, &tcp)
		}
	}

	var ingredientIDs []int64
	for id := range s.recipeIngredients[recipe.ID] {
		ingredientIDs = append(ingredientIDs, id)
	}
	sort.Slice(ingredientIDs, func(i, j int) bool { return ingredientIDs[i] < ingredientIDs[j] })
	for _, id := range ingredientIDs {
		if i, ok := s.ingredients[id]; ok {
			icp := *i
			cp.Ingredients = append(cp.Ingredients, &icp)
		}
	}
	return &cp
}

func (s *Store) GetRecipe(ctx context.Context, userID string, id int64) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipe, ok := s.recipes[id]
	if !ok || recipe.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return s.loadRecipe(recipe), nil
}

func (s *Store) ListRecipes(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recipes := []*domain.Recipe{}
	for _, r := range s.recipes {
		if r.UserID == userID {
			recipes = append(recipes, s.loadRecipe(r))
		}
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID > recipes[j].ID })
	return recipes, nil
}

func (s *Store) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.recipes[recipe.ID]
	if !ok || existing.UserID != recipe.UserID {
		return domain.ErrNotFound
	}
	existing.Title = recipe.Title
	existing.Description = recipe.Description
	existing.TimeMinutes = recipe.TimeMinutes
	existing.Price = recipe.Price
	existing.Link = recipe.Link
	return nil
}

func (s *Store) DeleteRecipe(ctx context.Context, userID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.recipes[id]
	if !ok || recipe.UserID != userID {
		return domain.ErrNotFound
	}
	delete(s.recipes, id)
	delete(s.recipeTags, id)
	delete(s.recipeIngredients, id)
	return nil
}

// ============================================
// Recipe associations
// ============================================

func (s *Store) AddRecipeTag(ctx context.Context, recipeID, tagID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.recipeTags[recipeID]
	if !ok {
		return domain.ErrNotFound
	}
	set[tagID] = true
	return nil
}

func (s *Store) ClearRecipeTags(ctx context.Context, recipeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipeTags[recipeID]; !ok {
		return domain.ErrNotFound
	}
	s.recipeTags[recipeID] = make(map[int64]bool)
	return nil
}

func (s *Store) AddRecipeIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.recipeIngredients[recipeID]
	if !ok {
		return domain.ErrNotFound
	}
	set[ingredientID] = true
	return nil
}

func (s *Store) ClearRecipeIngredients(ctx context.Context, recipeID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipeIngredients[recipeID]; !ok {
		return domain.ErrNotFound
	}
	s.recipeIngredients[recipeID] = make(map[int64]bool)
	return nil
}
