// Package recipe implements recipe CRUD on top of the storage layer,
// reconciling embedded tag/ingredient name lists against the owner's
// catalog on every create and update.
package recipe

import (
	"context"
	"errors"
	"strconv"

	"github.com/kdriscoll/recipe-manager/internal/catalog"
	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
	"github.com/kdriscoll/recipe-manager/internal/validation"
)

// Reconciler translates recipe payloads into persisted recipes with
// correctly associated catalog entries, scoped to the acting user.
type Reconciler struct {
	store   storage.Storage
	catalog *catalog.Service
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store storage.Storage, catalogService *catalog.Service) *Reconciler {
	return &Reconciler{store: store, catalog: catalogService}
}

// resolveTags resolves tag name refs into catalog ids, creating missing
// entries. Duplicate names within one payload collapse to a single id;
// first-mention order is preserved.
func (r *Reconciler) resolveTags(ctx context.Context, userID string, refs []domain.NameRef) ([]int64, error) {
	ids := make([]int64, 0, len(refs))
	seen := make(map[int64]bool, len(refs))
	for _, ref := range refs {
		tag, err := r.catalog.ResolveOrCreateTag(ctx, userID, ref.Name)
		if err != nil {
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				return nil, validation.NewValidationError("tags", verr.Value, verr.Message)
			}
			return nil, err
		}
		if !seen[tag.ID] {
			seen[tag.ID] = true
			ids = append(ids, tag.ID)
		}
	}
	return ids, nil
}

func (r *Reconciler) resolveIngredients(ctx context.Context, userID string, refs []domain.NameRef) ([]int64, error) {
	ids := make([]int64, 0, len(refs))
	seen := make(map[int64]bool, len(refs))
	for _, ref := range refs {
		ingredient, err := r.catalog.ResolveOrCreateIngredient(ctx, userID, ref.Name)
		if err != nil {
			var verr *validation.ValidationError
			if errors.As(err, &verr) {
				return nil, validation.NewValidationError("ingredients", verr.Value, verr.Message)
			}
			return nil, err
		}
		if !seen[ingredient.ID] {
			seen[ingredient.ID] = true
			ids = append(ids, ingredient.ID)
		}
	}
	return ids, nil
}

// Create persists a new recipe for the user. Unknown tag and ingredient
// names are created in the user's catalog as a side effect.
func (r *Reconciler) Create(ctx context.Context, userID string, req *domain.CreateRecipeRequest) (*domain.Recipe, error) {
	var errs validation.ValidationErrors
	if err := validation.ValidateTitle(req.Title); err != nil {
		errs.Add("title", req.Title, err.Error())
	}
	if err := validation.ValidateTimeMinutes(req.TimeMinutes); err != nil {
		errs.Add("time_minutes", strconv.Itoa(req.TimeMinutes), err.Error())
	}
	if err := validation.ValidatePrice(req.Price); err != nil {
		errs.Add("price", req.Price.String(), err.Error())
	}
	if errs.HasErrors() {
		return nil, errs
	}

	// Catalog resolution happens before the transaction opens: a
	// unique-violation retry inside an open postgres transaction would
	// abort it.
	tagIDs, err := r.resolveTags(ctx, userID, req.Tags)
	if err != nil {
		return nil, err
	}
	ingredientIDs, err := r.resolveIngredients(ctx, userID, req.Ingredients)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}

	tx, err := r.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	for _, tagID := range tagIDs {
		if err := tx.AddRecipeTag(ctx, recipe.ID, tagID); err != nil {
			return nil, err
		}
	}
	for _, ingredientID := range ingredientIDs {
		if err := tx.AddRecipeIngredient(ctx, recipe.ID, ingredientID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.store.GetRecipe(ctx, userID, recipe.ID)
}

// Update applies a partial update to the user's recipe. Nil fields are
// left untouched. A non-nil Tags or Ingredients list, empty included,
// replaces the recipe's whole association set; the replaced catalog
// entries themselves survive. The recipe's owner never changes.
func (r *Reconciler) Update(ctx context.Context, userID string, id int64, req *domain.UpdateRecipeRequest) (*domain.Recipe, error) {
	var errs validation.ValidationErrors
	if req.Title != nil {
		if err := validation.ValidateTitle(*req.Title); err != nil {
			errs.Add("title", *req.Title, err.Error())
		}
	}
	if req.TimeMinutes != nil {
		if err := validation.ValidateTimeMinutes(*req.TimeMinutes); err != nil {
			errs.Add("time_minutes", strconv.Itoa(*req.TimeMinutes), err.Error())
		}
	}
	if req.Price != nil {
		if err := validation.ValidatePrice(*req.Price); err != nil {
			errs.Add("price", req.Price.String(), err.Error())
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	// Confirm the recipe exists for this user before resolving names:
	// a failed update must not leave new catalog entries behind.
	if _, err := r.store.GetRecipe(ctx, userID, id); err != nil {
		return nil, err
	}

	var tagIDs, ingredientIDs []int64
	var err error
	if req.Tags != nil {
		if tagIDs, err = r.resolveTags(ctx, userID, *req.Tags); err != nil {
			return nil, err
		}
	}
	if req.Ingredients != nil {
		if ingredientIDs, err = r.resolveIngredients(ctx, userID, *req.Ingredients); err != nil {
			return nil, err
		}
	}

	tx, err := r.store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	recipe, err := tx.GetRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.TimeMinutes != nil {
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = *req.Link
	}
	if err := tx.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	if req.Tags != nil {
		if err := tx.ClearRecipeTags(ctx, recipe.ID); err != nil {
			return nil, err
		}
		for _, tagID := range tagIDs {
			if err := tx.AddRecipeTag(ctx, recipe.ID, tagID); err != nil {
				return nil, err
			}
		}
	}
	if req.Ingredients != nil {
		if err := tx.ClearRecipeIngredients(ctx, recipe.ID); err != nil {
			return nil, err
		}
		for _, ingredientID := range ingredientIDs {
			if err := tx.AddRecipeIngredient(ctx, recipe.ID, ingredientID); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return r.store.GetRecipe(ctx, userID, id)
}

// Delete removes the user's recipe and its associations. Catalog
// entries referenced by the recipe are untouched.
func (r *Reconciler) Delete(ctx context.Context, userID string, id int64) error {
	return r.store.DeleteRecipe(ctx, userID, id)
}

// Get returns the user's recipe with associations loaded.
func (r *Reconciler) Get(ctx context.Context, userID string, id int64) (*domain.Recipe, error) {
	return r.store.GetRecipe(ctx, userID, id)
}

// List returns the user's recipes, most recently created first.
func (r *Reconciler) List(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	return r.store.ListRecipes(ctx, userID)
}
