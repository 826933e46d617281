package agent

import "github.com/saulo-duarte/trivia-lambda/internal/oracle"

type AgentContainer struct {
	Service Service
	Handler *Handler
}

func NewAgentContainer(questions QuestionSource, provider oracle.Provider, judge AnswerJudge) *AgentContainer {
	selector := NewSelector(nil)
	answerer := NewAnswerer(provider, judge, nil)
	service := NewService(questions, selector, answerer)
	handler := NewHandler(service)

	return &AgentContainer{
		Service: service,
		Handler: handler,
	}
}
