package agent

import "fmt"

const (
	answerLabel    = "ANSWER"
	reasoningLabel = "REASONING"

	mistakeTemperature = 0.9
	correctTemperature = 0.3
	answerMaxTokens    = 200
)

func buildSystemPrompt(specialty string, skill SkillLevel) string {
	return fmt.Sprintf(
		"You are a Jeopardy! contestant whose specialty is %s. Your overall skill level is %s. "+
			"Stay in character and answer briefly.",
		specialty, skill)
}

func buildCorrectPrompt(question, category string) string {
	return fmt.Sprintf(`Category: %s
Clue: %s

Answer this clue correctly and confidently.

Respond in this exact format:
%s: [your answer, a few words]
%s: [one sentence explaining how you got there]`,
		category, question, answerLabel, reasoningLabel)
}

func buildMistakePrompt(question, category, correctAnswer string, skill SkillLevel) string {
	return fmt.Sprintf(`Category: %s
Clue: %s

For this round you must give a plausible but WRONG answer. The correct answer is "%s"; do not give it or anything equivalent.
Make the kind of mistake a %s player would typically make: confusing similar names, mixing up dates or eras, or swapping related concepts.
Sound natural and do not reveal that the answer is wrong.

Respond in this exact format:
%s: [your answer, a few words]
%s: [one sentence explaining how you got there]`,
		category, question, correctAnswer, skill, answerLabel, reasoningLabel)
}
