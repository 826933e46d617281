package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/saulo-duarte/trivia-lambda/internal/agent"
	"github.com/saulo-duarte/trivia-lambda/internal/config"
	"github.com/saulo-duarte/trivia-lambda/internal/judge"
	"github.com/saulo-duarte/trivia-lambda/internal/oracle"
	"github.com/saulo-duarte/trivia-lambda/internal/router"
	"github.com/saulo-duarte/trivia-lambda/internal/trivia"
)

type Container struct {
	Config          *config.Config
	Provider        oracle.Provider
	Judge           *judge.Judge
	TriviaContainer *trivia.TriviaContainer
	AgentContainer  *agent.AgentContainer
}

// New loads configuration, connects the database and builds every feature
// container. The oracle provider comes from the ORACLE_* environment.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg.LogLevel)

	if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	provider, err := oracle.NewProvider(ctx, oracle.ConfigFromEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to build oracle provider: %w", err)
	}

	answerJudge := judge.New(provider)
	triviaContainer := trivia.NewTriviaContainer(config.DB, answerJudge)
	agentContainer := agent.NewAgentContainer(triviaContainer.Service, provider, answerJudge)

	config.WithContext(ctx).
		WithField("model", provider.ModelID()).
		Info("Container initialized")

	return &Container{
		Config:          cfg,
		Provider:        provider,
		Judge:           answerJudge,
		TriviaContainer: triviaContainer,
		AgentContainer:  agentContainer,
	}, nil
}

func (c *Container) Handler() http.Handler {
	return router.New(router.RouterConfig{
		TriviaHandler: c.TriviaContainer.Handler,
		AgentHandler:  c.AgentContainer.Handler,
		CORSOrigins:   c.Config.CORSOrigins,
	})
}
