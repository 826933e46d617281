package trivia

import util "github.com/saulo-duarte/trivia-lambda/internal/utils"

type Question struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ShowNumber int        `gorm:"not null" json:"show_number"`
	AirDate    *util.Date `gorm:"type:date" json:"air_date,omitempty"`
	Round      *string    `gorm:"type:varchar(50)" json:"round,omitempty"`
	Category   *string    `gorm:"type:varchar(255)" json:"category,omitempty"`
	Value      *int       `json:"value,omitempty"`
	Question   *string    `gorm:"type:text" json:"question,omitempty"`
	Answer     *string    `gorm:"type:text" json:"answer,omitempty"`
}

func (Question) TableName() string {
	return "trivia_questions"
}

// Nullable text columns surface as empty strings.

func (q *Question) RoundText() string    { return deref(q.Round) }
func (q *Question) CategoryText() string { return deref(q.Category) }
func (q *Question) QuestionText() string { return deref(q.Question) }
func (q *Question) AnswerText() string   { return deref(q.Answer) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
