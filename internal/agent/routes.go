package agent

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListAgents)
	return r
}

func PlayRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Play)
	return r
}
