// Package catalog manages the per-user tag and ingredient catalogs.
//
// Catalog entries are keyed by (user, name). They are created lazily:
// referencing an unknown name from a recipe creates the entry, and
// referencing it again returns the same entry. Entries are shared by
// reference across a user's recipes, so deleting a recipe (or clearing
// its associations) never removes catalog rows.
package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
	"github.com/kdriscoll/recipe-manager/internal/validation"
)

// Service exposes catalog operations over the storage layer.
type Service struct {
	store storage.Storage
}

// NewService creates a new catalog Service.
func NewService(store storage.Storage) *Service {
	return &Service{store: store}
}

// ResolveOrCreateTag returns the user's tag with the given name,
// creating it if it does not exist. Safe under concurrent calls for the
// same (user, name): when two callers race past the lookup, the storage
// unique constraint rejects the second insert and the loser re-reads
// the winner's row instead of surfacing the conflict.
func (s *Service) ResolveOrCreateTag(ctx context.Context, userID, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCatalogName(name); err != nil {
		return nil, validation.NewValidationError("name", name, err.Error())
	}

	tag, err := s.store.GetTagByName(ctx, userID, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	tag = &domain.Tag{UserID: userID, Name: name}
	err = s.store.CreateTag(ctx, tag)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.store.GetTagByName(ctx, userID, name)
	}
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// ResolveOrCreateIngredient is ResolveOrCreateTag for ingredients.
func (s *Service) ResolveOrCreateIngredient(ctx context.Context, userID, name string) (*domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCatalogName(name); err != nil {
		return nil, validation.NewValidationError("name", name, err.Error())
	}

	ingredient, err := s.store.GetIngredientByName(ctx, userID, name)
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	ingredient = &domain.Ingredient{UserID: userID, Name: name}
	err = s.store.CreateIngredient(ctx, ingredient)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.store.GetIngredientByName(ctx, userID, name)
	}
	if err != nil {
		return nil, err
	}
	return ingredient, nil
}

// ListTags lists the user's tags, name descending.
func (s *Service) ListTags(ctx context.Context, userID string) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx, userID)
}

// UpdateTag renames the user's tag. A tag owned by another user is
// reported as not found.
func (s *Service) UpdateTag(ctx context.Context, userID string, id int64, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCatalogName(name); err != nil {
		return nil, validation.NewValidationError("name", name, err.Error())
	}

	tag := &domain.Tag{ID: id, UserID: userID, Name: name}
	if err := s.store.UpdateTag(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes the user's tag and any recipe associations to it.
func (s *Service) DeleteTag(ctx context.Context, userID string, id int64) error {
	return s.store.DeleteTag(ctx, userID, id)
}

// ListIngredients lists the user's ingredients, name descending.
func (s *Service) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	return s.store.ListIngredients(ctx, userID)
}

// UpdateIngredient renames the user's ingredient.
func (s *Service) UpdateIngredient(ctx context.Context, userID string, id int64, name string) (*domain.Ingredient, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCatalogName(name); err != nil {
		return nil, validation.NewValidationError("name", name, err.Error())
	}

	ingredient := &domain.Ingredient{ID: id, UserID: userID, Name: name}
	if err := s.store.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient removes the user's ingredient and any recipe
// associations to it.
func (s *Service) DeleteIngredient(ctx context.Context, userID string, id int64) error {
	return s.store.DeleteIngredient(ctx, userID, id)
}
