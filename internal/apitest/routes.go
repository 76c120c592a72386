package apitest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, s.withRequestLog)

	router.Route("/api", func(r chi.Router) {
		r.Get("/meals", s.listMeals)
		r.Post("/meals", s.createMeal)
		r.Put("/meals/{mealId}", s.updateMeal)
		r.Delete("/meals/{mealId}", s.deleteMeal)

		r.Post("/add-custom-food", s.addCustomFood)
		r.Get("/search-food", s.searchFood)
		r.Get("/get-food-details", s.getFoodDetails)

		r.Get("/health", s.health)
	})

	return router
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requestURIs = append(s.requestURIs, r.RequestURI)
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
