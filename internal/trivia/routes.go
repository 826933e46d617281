package trivia

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetQuestion)
	r.Get("/{id}", h.GetQuestionDetail)
	return r
}

func VerifyRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.VerifyAnswer)
	return r
}
