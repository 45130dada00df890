package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/question"
)

const systemPrompt = "You are an expert quiz generator. Create diverse, educational questions based on the provided content. Always respond with valid JSON format."

const basePrompt = `Based on the following content, create a %s difficulty %s question.

Focus on: %s
Variation seed: %d (use this to ensure variety in your approach)

Content:
%s

Requirements:
- Make the question educational and relevant to the content
- Ensure the question tests understanding, not just memorization
- Use the variation seed to create a unique perspective or angle
`

const multipleChoiceContract = `
Return a JSON object with this exact structure:
{
    "question": "Your question here",
    "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
    "correct_answer": "a",
    "explanation": "Brief explanation of why this answer is correct"
}

Make sure one option is clearly correct and others are plausible but wrong.
The correct_answer should be "a", "b", "c", or "d" (lowercase).
`

const trueFalseContract = `
Return a JSON object with this exact structure:
{
    "question": "Your true/false statement here",
    "correct_answer": "true",
    "explanation": "Brief explanation of why this answer is correct"
}

The correct_answer should be either "true" or "false" (lowercase).
Make the statement clear and unambiguous.
`

const shortAnswerContract = `
Return a JSON object with this exact structure:
{
    "question": "Your question here",
    "correct_answer": "Expected answer",
    "explanation": "Brief explanation and acceptable variations of the answer"
}

Keep the expected answer concise (1-3 words when possible).
The question should have a clear, specific answer.
`

// BuildUserPrompt renders the per-question instruction for one chunk.
func BuildUserPrompt(chunk string, t question.Type, difficulty question.Difficulty, seed int, focus string) string {
	prompt := fmt.Sprintf(basePrompt,
		difficulty,
		strings.ReplaceAll(string(t), "_", " "),
		focus,
		seed,
		chunk,
	)

	switch t {
	case question.TypeMultipleChoice:
		prompt += multipleChoiceContract
	case question.TypeTrueFalse:
		prompt += trueFalseContract
	case question.TypeShortAnswer:
		prompt += shortAnswerContract
	}
	return prompt
}
