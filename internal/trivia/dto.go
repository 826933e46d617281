package trivia

import util "github.com/saulo-duarte/trivia-lambda/internal/utils"

type QuestionResponse struct {
	QuestionID uint   `json:"question_id"`
	Round      string `json:"round"`
	Category   string `json:"category"`
	Value      string `json:"value"`
	Question   string `json:"question"`
}

type QuestionDetailResponse struct {
	QuestionResponse
	Answer     string     `json:"answer"`
	ShowNumber *int       `json:"show_number"`
	AirDate    *util.Date `json:"air_date"`
}

type VerifyAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	UserAnswer string `json:"user_answer"`
}

type VerifyAnswerResponse struct {
	IsCorrect  bool   `json:"is_correct"`
	AIResponse string `json:"ai_response"`
}

func ToQuestionResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		QuestionID: q.ID,
		Round:      q.RoundText(),
		Category:   q.CategoryText(),
		Value:      FormatValue(q.Value),
		Question:   q.QuestionText(),
	}
}

func ToQuestionDetailResponse(q *Question) QuestionDetailResponse {
	showNumber := q.ShowNumber
	return QuestionDetailResponse{
		QuestionResponse: ToQuestionResponse(q),
		Answer:           q.AnswerText(),
		ShowNumber:       &showNumber,
		AirDate:          q.AirDate,
	}
}
