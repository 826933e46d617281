package judge

import "fmt"

const systemPrompt = "You are a helpful and fair Jeopardy! game judge."

const (
	verdictLabel     = "VERDICT"
	explanationLabel = "EXPLANATION"

	correctToken   = "CORRECT"
	incorrectToken = "INCORRECT"
)

func buildUserPrompt(question, correctAnswer, userAnswer string) string {
	return fmt.Sprintf(`You are a Jeopardy! game judge. Your task is to determine if a user's answer is correct, even if it has spelling errors or is phrased differently.

Question: %s
Correct Answer: %s
User's Answer: %s

Analyze if the user's answer is essentially correct despite any spelling errors or different phrasing. Consider:
1. Spelling mistakes (e.g., "Copernics" vs "Copernicus")
2. Alternative names or titles
3. Partial answers that capture the key concept
4. Contextual understanding

Respond in this exact format:
%s: [%s or %s]
%s: [One sentence explaining why, providing context about the correct answer]

Be generous with spelling errors but strict about factual accuracy.`,
		question, correctAnswer, userAnswer,
		verdictLabel, correctToken, incorrectToken, explanationLabel)
}
