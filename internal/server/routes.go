package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the REST surface of the reference driver service.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/health", h.health)
	router.Head("/api/health", h.health)

	router.Get("/api/drivers", h.listDrivers)
	router.Post("/api/drivers", h.createDriver)
	router.Patch("/api/drivers", h.updateDriver)
	router.Delete("/api/drivers", h.deleteDriver)
	router.Get("/api/drivers/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.getDriver(w, r, chi.URLParam(r, "id"))
	})

	return router
}
