package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kdriscoll/recipe-manager/internal/api/middleware"
	"github.com/kdriscoll/recipe-manager/internal/catalog"
	"github.com/kdriscoll/recipe-manager/internal/domain"
)

// IngredientHandler handles ingredient endpoints. Like tags,
// ingredients are created through recipe payloads, not directly.
type IngredientHandler struct {
	catalog *catalog.Service
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(catalogService *catalog.Service) *IngredientHandler {
	return &IngredientHandler{catalog: catalogService}
}

func ingredientID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List lists the authenticated user's ingredients, name descending.
func (h *IngredientHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	ingredients, err := h.catalog.ListIngredients(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ingredients)
}

// Update renames an ingredient.
func (h *IngredientHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := ingredientID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req domain.UpdateIngredientRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ingredient, err := h.catalog.UpdateIngredient(r.Context(), user.ID, id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ingredient)
}

// Delete deletes an ingredient and its recipe associations.
func (h *IngredientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := ingredientID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.catalog.DeleteIngredient(r.Context(), user.ID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
