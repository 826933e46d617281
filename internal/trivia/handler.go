package trivia

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GetQuestion godoc
// @Summary  Random trivia question
// @Param    round query string false "Game round, e.g. Jeopardy!"
// @Param    value query string false "Dollar value, e.g. $200"
// @Success  200 {object} QuestionResponse
// @Failure  404 {object} config.ErrorResponse
// @Router   /api/v1/question/ [get]
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	round := r.URL.Query().Get("round")
	value := r.URL.Query().Get("value")

	question, err := h.service.GetRandomQuestion(r.Context(), round, value)
	if err != nil {
		if errors.Is(err, ErrNoQuestions) {
			config.Error(w, http.StatusNotFound, "No questions found")
			return
		}
		log.WithError(err).Error("Failed to get random question")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ToQuestionResponse(question))
}

// GetQuestionDetail godoc
// @Summary  Question with its answer
// @Param    id path int true "Question ID"
// @Success  200 {object} QuestionDetailResponse
// @Failure  404 {object} config.ErrorResponse
// @Router   /api/v1/question/{id} [get]
func (h *Handler) GetQuestionDetail(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		log.WithError(err).Warn("Invalid question id")
		config.Error(w, http.StatusBadRequest, "invalid question id")
		return
	}

	question, err := h.service.GetQuestionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, fmt.Sprintf("Question %d not found", id))
			return
		}
		log.WithError(err).Error("Failed to get question")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, ToQuestionDetailResponse(question))
}

// VerifyAnswer godoc
// @Summary  Judge a free-text answer
// @Param    body body VerifyAnswerRequest true "Answer to check"
// @Success  200 {object} VerifyAnswerResponse
// @Failure  404 {object} config.ErrorResponse
// @Router   /api/v1/verify-answer/ [post]
func (h *Handler) VerifyAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req VerifyAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid verify-answer body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.VerifyAnswer(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			config.Error(w, http.StatusNotFound, fmt.Sprintf("Question %d not found", req.QuestionID))
			return
		}
		log.WithError(err).Error("Failed to verify answer")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func parseID(raw string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("id must be positive")
	}
	return uint(n), nil
}
