package trivia

import "gorm.io/gorm"

type TriviaContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewTriviaContainer(db *gorm.DB, judge AnswerJudge) *TriviaContainer {
	repo := NewRepository(db)
	service := NewService(repo, judge)
	handler := NewHandler(service)

	return &TriviaContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
