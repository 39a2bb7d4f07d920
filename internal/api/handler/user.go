package handler

import (
	"net/http"
	"time"

	"github.com/kdriscoll/recipe-manager/internal/api/middleware"
	"github.com/kdriscoll/recipe-manager/internal/auth"
	"github.com/kdriscoll/recipe-manager/internal/domain"
	"github.com/kdriscoll/recipe-manager/internal/storage"
	"github.com/kdriscoll/recipe-manager/internal/validation"
)

// UserHandler handles account and token endpoints.
type UserHandler struct {
	store storage.Storage
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store storage.Storage) *UserHandler {
	return &UserHandler{store: store}
}

// Register creates a new account.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs validation.ValidationErrors
	if err := validation.ValidateEmail(req.Email); err != nil {
		errs.Add("email", req.Email, err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		errs.Add("password", "", err.Error())
	}
	if errs.HasErrors() {
		respondValidationErrors(w, errs)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	user := &domain.User{
		ID:           generateID(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// IssueToken verifies credentials and issues a new bearer token.
// The raw token is only returned here, once.
func (h *UserHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req domain.IssueTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		respondError(w, http.StatusBadRequest, "unable to authenticate with provided credentials")
		return
	}

	token, hash, prefix, err := generateToken()
	if err != nil {
		handleError(w, err)
		return
	}

	authToken := &domain.AuthToken{
		ID:          generateID(),
		UserID:      user.ID,
		TokenHash:   hash,
		TokenPrefix: prefix,
		CreatedAt:   time.Now(),
	}

	if err := h.store.CreateAuthToken(r.Context(), authToken); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, &domain.IssueTokenResponse{
		ID:          authToken.ID,
		Token:       token,
		TokenPrefix: prefix,
		CreatedAt:   authToken.CreatedAt,
	})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	respondJSON(w, http.StatusOK, user)
}

// UpdateMe updates the authenticated user's name and/or password.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var req domain.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		if err := validation.ValidatePassword(*req.Password); err != nil {
			respondValidationErrors(w, validation.ValidationErrors{
				validation.NewValidationError("password", "", err.Error()),
			})
			return
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			handleError(w, err)
			return
		}
		user.PasswordHash = hash
	}

	if err := h.store.UpdateUser(r.Context(), user); err != nil {
		handleError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// DeleteMe deletes the authenticated user's account and everything it
// owns: tokens, recipes, tags, ingredients.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	if err := h.store.DeleteUser(r.Context(), user.ID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
