package aiquiz

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitForQuestions groups sentences into chunks sized for questionCount
// questions. With fewer sentences than questions the whole content is one
// chunk. The result is never empty.
func SplitForQuestions(content string, questionCount int) []string {
	var sentences []string
	for _, s := range sentenceEnd.Split(content, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}

	if questionCount < 1 || len(sentences) < questionCount {
		return []string{content}
	}

	size := max(2, len(sentences)/questionCount)
	var chunks []string
	for i := 0; i < len(sentences); i += size {
		end := min(i+size, len(sentences))
		if chunk := strings.Join(sentences[i:end], ". "); chunk != "" {
			chunks = append(chunks, chunk)
		}
	}

	if len(chunks) == 0 {
		return []string{content}
	}
	return chunks
}
