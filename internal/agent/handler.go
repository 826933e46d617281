package agent

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// ListAgents godoc
// @Summary  Persona roster
// @Success  200 {array} Persona
// @Router   /api/v1/agents/ [get]
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.ListAgents())
}

// Play godoc
// @Summary  Let a persona answer a question
// @Param    body body PlayRequest false "Question selection"
// @Success  200 {object} PlayResult
// @Failure  404 {object} config.ErrorResponse
// @Router   /api/v1/agent-play/ [post]
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Warn("Invalid agent-play body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Play(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, trivia.ErrQuestionNotFound):
			config.Error(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, trivia.ErrNoQuestions):
			config.Error(w, http.StatusNotFound, "No questions found")
		case errors.Is(err, ErrUnknownAgent):
			config.Error(w, http.StatusBadRequest, "unknown agent_id")
		default:
			log.WithError(err).Error("Agent play failed")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, result)
}
