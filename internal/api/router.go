package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kdriscoll/recipe-manager/internal/api/handler"
	"github.com/kdriscoll/recipe-manager/internal/api/middleware"
	"github.com/kdriscoll/recipe-manager/internal/catalog"
	"github.com/kdriscoll/recipe-manager/internal/recipe"
	"github.com/kdriscoll/recipe-manager/internal/storage"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(store storage.Storage) http.Handler {
	catalogService := catalog.NewService(store)
	reconciler := recipe.NewReconciler(store, catalogService)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)

	// Health check (no auth required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.ContentType)

		userHandler := handler.NewUserHandler(store)

		// Account creation and token issuance (no auth required)
		r.Post("/users", userHandler.Register)
		r.Post("/users/token", userHandler.IssueToken)

		// Everything else acts on the authenticated user's data.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(store))

			r.Get("/users/me", userHandler.Me)
			r.Patch("/users/me", userHandler.UpdateMe)
			r.Delete("/users/me", userHandler.DeleteMe)

			// Recipes
			recipeHandler := handler.NewRecipeHandler(reconciler)
			r.Post("/recipes", recipeHandler.Create)
			r.Get("/recipes", recipeHandler.List)
			r.Get("/recipes/{id}", recipeHandler.Get)
			r.Put("/recipes/{id}", recipeHandler.Update)
			r.Patch("/recipes/{id}", recipeHandler.Update)
			r.Delete("/recipes/{id}", recipeHandler.Delete)

			// Tags (created only via recipe payloads)
			tagHandler := handler.NewTagHandler(catalogService)
			r.Get("/tags", tagHandler.List)
			r.Put("/tags/{id}", tagHandler.Update)
			r.Patch("/tags/{id}", tagHandler.Update)
			r.Delete("/tags/{id}", tagHandler.Delete)

			// Ingredients (same shape as tags)
			ingredientHandler := handler.NewIngredientHandler(catalogService)
			r.Get("/ingredients", ingredientHandler.List)
			r.Put("/ingredients/{id}", ingredientHandler.Update)
			r.Patch("/ingredients/{id}", ingredientHandler.Update)
			r.Delete("/ingredients/{id}", ingredientHandler.Delete)
		})
	})

	return r
}
