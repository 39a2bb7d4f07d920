package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/kdriscoll/recipe-manager/internal/api/middleware"
	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/recipe"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	reconciler *recipe.Reconciler
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(reconciler *recipe.Reconciler) *RecipeHandler {
	return &RecipeHandler{reconciler: reconciler}
}

// recipeSummary is the list representation: no description.
type recipeSummary struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       decimal.Decimal      `json:"price"`
	Link        string               `json:"link"`
	Tags        []*domain.Tag        `json:"tags"`
	Ingredients []*domain.Ingredient `json:"ingredients"`
}

// recipeDetail is the full representation: summary plus description.
type recipeDetail struct {
	recipeSummary
	Description string `json:"description"`
}

// summaryView extracts the shared representation fields from a recipe.
func summaryView(r *domain.Recipe) recipeSummary {
	return recipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		Tags:        r.Tags,
		Ingredients: r.Ingredients,
	}
}

// detailView is summaryView plus the description field.
func detailView(r *domain.Recipe) recipeDetail {
	return recipeDetail{
		recipeSummary: summaryView(r),
		Description:   r.Description,
	}
}

// recipeID parses the {id} route parameter. A non-numeric id behaves
// like a missing recipe.
func recipeID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// Create creates a new recipe for the authenticated user.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req domain.CreateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.reconciler.Create(r.Context(), user.ID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, detailView(created))
}

// List lists the authenticated user's recipes, most recent first.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	recipes, err := h.reconciler.List(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	views := make([]recipeSummary, 0, len(recipes))
	for _, rec := range recipes {
		views = append(views, summaryView(rec))
	}
	respondJSON(w, http.StatusOK, views)
}

// Get returns one of the authenticated user's recipes in full.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := recipeID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	rec, err := h.reconciler.Get(r.Context(), user.ID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detailView(rec))
}

// Update applies a full or partial update to a recipe. Both PUT and
// PATCH land here; absent fields are left untouched either way.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := recipeID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req domain.UpdateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.reconciler.Update(r.Context(), user.ID, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, detailView(updated))
}

// Delete deletes one of the authenticated user's recipes.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := recipeID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.reconciler.Delete(r.Context(), user.ID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
