package recipe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/kdriscoll/recipe-manager/internal/catalog"
	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/recipe"
	"github.com/kdriscoll/recipe-manager/internal/storage/memory"
	"github.com/kdriscoll/recipe-manager/internal/validation"
)

func newReconciler(t *testing.T) (*recipe.Reconciler, *memory.Store) {
	t.Helper()
	store := memory.New()
	err := store.CreateUser(context.Background(), &domain.User{
		ID:           "user-1",
		Email:        "user-1@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return recipe.NewReconciler(store, catalog.NewService(store)), store
}

func sampleCreate() *domain.CreateRecipeRequest {
	return &domain.CreateRecipeRequest{
		Title:       "Pad Thai",
		Description: "Street-style noodles",
		TimeMinutes: 25,
		Price:       decimal.RequireFromString("7.50"),
		Link:        "https://example.com/pad-thai",
		Tags:        []domain.NameRef{{Name: "Thai"}, {Name: "Dinner"}},
		Ingredients: []domain.NameRef{{Name: "Rice Noodles"}, {Name: "Peanuts"}},
	}
}

func tagNames(tags []*domain.Tag) []string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}

func TestCreateRecipeCreatesMissingCatalogEntries(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Errorf("Expected assigned recipe id")
	}
	if len(created.Tags) != 2 {
		t.Errorf("Expected 2 tags, got %d", len(created.Tags))
	}
	if len(created.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredients, got %d", len(created.Ingredients))
	}

	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 2 {
		t.Errorf("Expected 2 catalog tags, got %d", len(tags))
	}
	ingredients, _ := store.ListIngredients(ctx, "user-1")
	if len(ingredients) != 2 {
		t.Errorf("Expected 2 catalog ingredients, got %d", len(ingredients))
	}
}

func TestCreateRecipeReusesExistingCatalogEntries(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	existing := &domain.Tag{UserID: "user-1", Name: "Thai"}
	if err := store.CreateTag(ctx, existing); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var found bool
	for _, tag := range created.Tags {
		if tag.Name == "Thai" && tag.ID == existing.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected existing tag to be reused, got %v", tagNames(created.Tags))
	}

	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 2 {
		t.Errorf("Expected 2 catalog tags, got %d", len(tags))
	}
}

func TestCreateRecipeCollapsesDuplicateNames(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	req := sampleCreate()
	req.Tags = []domain.NameRef{{Name: "Thai"}, {Name: "Thai"}, {Name: " Thai "}}

	created, err := r.Create(ctx, "user-1", req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(created.Tags) != 1 {
		t.Errorf("Expected duplicates to collapse to 1 tag, got %d", len(created.Tags))
	}
	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 1 {
		t.Errorf("Expected 1 catalog tag, got %d", len(tags))
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	r, _ := newReconciler(t)
	ctx := context.Background()

	req := sampleCreate()
	req.Title = ""
	req.TimeMinutes = -5
	req.Price = decimal.RequireFromString("-1.00")

	_, err := r.Create(ctx, "user-1", req)
	var errs validation.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
	if len(errs) != 3 {
		t.Errorf("Expected 3 validation errors, got %d: %v", len(errs), errs)
	}
}

func TestCreateRecipePriceTooPrecise(t *testing.T) {
	r, _ := newReconciler(t)

	req := sampleCreate()
	req.Price = decimal.RequireFromString("5.255")

	_, err := r.Create(context.Background(), "user-1", req)
	var errs validation.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
}

func TestUpdateRecipePartial(t *testing.T) {
	r, _ := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	title := "Pad Thai Deluxe"
	updated, err := r.Update(ctx, "user-1", created.ID, &domain.UpdateRecipeRequest{Title: &title})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if updated.Title != title {
		t.Errorf("Expected updated title, got %q", updated.Title)
	}
	if updated.Description != created.Description {
		t.Errorf("Expected description untouched, got %q", updated.Description)
	}
	if updated.TimeMinutes != created.TimeMinutes {
		t.Errorf("Expected time untouched, got %d", updated.TimeMinutes)
	}
	if len(updated.Tags) != 2 || len(updated.Ingredients) != 2 {
		t.Errorf("Expected associations untouched, got %d tags and %d ingredients",
			len(updated.Tags), len(updated.Ingredients))
	}
}

func TestUpdateRecipeReplacesTags(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	newTags := []domain.NameRef{{Name: "Vegan"}}
	updated, err := r.Update(ctx, "user-1", created.ID, &domain.UpdateRecipeRequest{Tags: &newTags})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(updated.Tags) != 1 || updated.Tags[0].Name != "Vegan" {
		t.Errorf("Expected tags replaced with [Vegan], got %v", tagNames(updated.Tags))
	}
	if len(updated.Ingredients) != 2 {
		t.Errorf("Expected ingredients untouched, got %d", len(updated.Ingredients))
	}

	// replaced tags stay in the catalog
	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 3 {
		t.Errorf("Expected 3 catalog tags after replace, got %d", len(tags))
	}
}

func TestUpdateRecipeClearsTagsWithEmptyList(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	empty := []domain.NameRef{}
	updated, err := r.Update(ctx, "user-1", created.ID, &domain.UpdateRecipeRequest{Tags: &empty})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(updated.Tags) != 0 {
		t.Errorf("Expected no tags, got %v", tagNames(updated.Tags))
	}
	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 2 {
		t.Errorf("Expected catalog tags to survive, got %d", len(tags))
	}
}

func TestUpdateRecipeOtherUserNotFound(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	err := store.CreateUser(ctx, &domain.User{
		ID:           "user-2",
		Email:        "user-2@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	title := "Hijacked"
	if _, err := r.Update(ctx, "user-2", created.ID, &domain.UpdateRecipeRequest{Title: &title}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := r.Delete(ctx, "user-2", created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := r.Get(ctx, "user-2", created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	got, err := r.Get(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.Title != "Pad Thai" {
		t.Errorf("Expected title unchanged, got %q", got.Title)
	}
}

func TestUpdateMissingRecipeCreatesNoCatalogEntries(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	err := store.CreateUser(ctx, &domain.User{
		ID:           "user-2",
		Email:        "user-2@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	newTags := []domain.NameRef{{Name: "Sneaky"}}
	newIngredients := []domain.NameRef{{Name: "Salt"}}

	// Nonexistent id for the owner, and a real id for another user:
	// neither update may leave new catalog entries behind.
	req := &domain.UpdateRecipeRequest{Tags: &newTags, Ingredients: &newIngredients}
	if _, err := r.Update(ctx, "user-1", created.ID+999, req); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := r.Update(ctx, "user-2", created.ID, req); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 2 {
		t.Errorf("Expected catalog unchanged for user-1, got %d tags", len(tags))
	}
	for _, userID := range []string{"user-1", "user-2"} {
		tags, _ := store.ListTags(ctx, userID)
		for _, tag := range tags {
			if tag.Name == "Sneaky" {
				t.Errorf("Failed update created a tag for %s", userID)
			}
		}
		ingredients, _ := store.ListIngredients(ctx, userID)
		for _, ing := range ingredients {
			if ing.Name == "Salt" && userID == "user-2" {
				t.Errorf("Failed update created an ingredient for %s", userID)
			}
		}
	}
}

func TestDeleteRecipeLeavesCatalog(t *testing.T) {
	r, store := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := r.Delete(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := r.Get(ctx, "user-1", created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	tags, _ := store.ListTags(ctx, "user-1")
	if len(tags) != 2 {
		t.Errorf("Expected catalog tags to survive delete, got %d", len(tags))
	}
	ingredients, _ := store.ListIngredients(ctx, "user-1")
	if len(ingredients) != 2 {
		t.Errorf("Expected catalog ingredients to survive delete, got %d", len(ingredients))
	}
}

func TestListRecipesNewestFirst(t *testing.T) {
	r, _ := newReconciler(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		req := sampleCreate()
		req.Title = title
		req.Tags = nil
		req.Ingredients = nil
		if _, err := r.Create(ctx, "user-1", req); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	recipes, err := r.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := []string{"Third", "Second", "First"}
	if len(recipes) != len(want) {
		t.Fatalf("Expected %d recipes, got %d", len(want), len(recipes))
	}
	for i, title := range want {
		if recipes[i].Title != title {
			t.Errorf("Position %d: expected %q, got %q", i, title, recipes[i].Title)
		}
	}
}

func TestUpdateRecipeValidationLeavesRecipeUntouched(t *testing.T) {
	r, _ := newReconciler(t)
	ctx := context.Background()

	created, err := r.Create(ctx, "user-1", sampleCreate())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	bad := ""
	_, err = r.Update(ctx, "user-1", created.ID, &domain.UpdateRecipeRequest{Title: &bad})
	var errs validation.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}

	got, _ := r.Get(ctx, "user-1", created.ID)
	if got.Title != "Pad Thai" {
		t.Errorf("Expected title unchanged after failed update, got %q", got.Title)
	}
}
