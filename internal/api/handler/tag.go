package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kdriscoll/recipe-manager/internal/api/middleware"
	"github.com/kdriscoll/recipe-manager/internal/catalog"
	"github.com/kdriscoll/recipe-manager/internal/domain"
)

// TagHandler handles tag endpoints. Tags have no create endpoint;
// they come into existence through recipe payloads.
type TagHandler struct {
	catalog *catalog.Service
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(catalogService *catalog.Service) *TagHandler {
	return &TagHandler{catalog: catalogService}
}

func tagID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// List lists the authenticated user's tags, name descending.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	tags, err := h.catalog.ListTags(r.Context(), user.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tags)
}

// Update renames a tag.
func (h *TagHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := tagID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	var req domain.UpdateTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tag, err := h.catalog.UpdateTag(r.Context(), user.ID, id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tag)
}

// Delete deletes a tag and its recipe associations.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	id, err := tagID(r)
	if err != nil {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.catalog.DeleteTag(r.Context(), user.ID, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
