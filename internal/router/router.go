package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/trivia-lambda/internal/agent"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/middlewares"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

type RouterConfig struct {
	TriviaHandler *trivia.Handler
	AgentHandler  *agent.Handler
	CORSOrigins   []string
}

type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CORSOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, statusResponse{Message: "Trivia API", Status: "running"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/question", trivia.Routes(cfg.TriviaHandler))
		r.Mount("/verify-answer", trivia.VerifyRoutes(cfg.TriviaHandler))
		r.Mount("/agents", agent.Routes(cfg.AgentHandler))
		r.Mount("/agent-play", agent.PlayRoutes(cfg.AgentHandler))
	})
	return r
}
