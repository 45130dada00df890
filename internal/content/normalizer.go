package content

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minProcessedLength = 50
	minParagraphLength = 20
)

var (
	ErrEmptyInput     = errors.New("content is empty")
	ErrTooMuchRemoved = errors.New("processed content is too short")
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	disallowedPattern = regexp.MustCompile(`[^\p{L}\p{N}\p{M}_\s.,!?;:()'"-]+`)
	paragraphPattern  = regexp.MustCompile(`\s*\n\s*\n\s*`)
	ellipsisPattern   = regexp.MustCompile(`\s*\.\s*\.\s*\.+`)
	spacesPattern     = regexp.MustCompile(` +`)
	newlinesPattern   = regexp.MustCompile(`\n{3,}`)
)

// keyPatterns mark paragraphs worth keeping even when they are short:
// definitions, examples, importance, causality, sequence and comparison.
var keyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(define|definition|concept|principle|theory|method|process)\b`),
	regexp.MustCompile(`\b(example|instance|case|scenario|situation)\b`),
	regexp.MustCompile(`\b(important|significant|key|main|primary|essential)\b`),
	regexp.MustCompile(`\b(because|therefore|thus|consequently|as a result)\b`),
	regexp.MustCompile(`\b(first|second|third|next|then|finally)\b`),
	regexp.MustCompile(`\b(compare|contrast|difference|similar|unlike)\b`),
}

// Result is the outcome of Process. When FellBack is set, Content holds the
// trimmed raw input and Err says why processing was discarded.
type Result struct {
	Content  string
	FellBack bool
	Err      error
}

// Normalize cleans raw course text. It never fails: whenever processing
// errors out or removes too much, the trimmed input is returned.
func Normalize(raw string) string {
	return Process(raw).Content
}

// Process runs the cleaning pipeline and reports whether the fallback fired.
func Process(raw string) (res Result) {
	original := strings.TrimSpace(raw)
	if original == "" {
		return Result{Err: ErrEmptyInput}
	}

	defer func() {
		if r := recover(); r != nil {
			res = Result{Content: original, FellBack: true, Err: fmt.Errorf("normalize: %v", r)}
		}
	}()

	text := cleanText(raw)
	text = normalizeWhitespace(text)
	text = extractMeaningful(text)

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minProcessedLength {
		return Result{Content: original, FellBack: true, Err: ErrTooMuchRemoved}
	}
	return Result{Content: text}
}

func cleanText(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	text = disallowedPattern.ReplaceAllString(text, " ")
	text = paragraphPattern.ReplaceAllString(text, "\n\n")
	text = ellipsisPattern.ReplaceAllString(text, "...")
	return text
}

func normalizeWhitespace(text string) string {
	text = spacesPattern.ReplaceAllString(text, " ")
	text = newlinesPattern.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r\f\v")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractMeaningful(text string) string {
	var kept []string
	for _, p := range Paragraphs(text) {
		if utf8.RuneCountInString(p) > minParagraphLength || containsKeyInformation(p) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

func containsKeyInformation(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range keyPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// Paragraphs splits on blank lines and drops empty pieces.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
