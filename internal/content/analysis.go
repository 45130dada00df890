package content

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	DefaultChunkSize = 500
	maxTopics        = 10
	minWordCount     = 20
)

var (
	topicWordPattern   = regexp.MustCompile(`\b[a-z]{4,}\b`)
	wordPattern        = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentenceEndPattern = regexp.MustCompile(`[.!?]+`)
)

var conceptIndicators = []string{
	"define", "concept", "theory", "principle", "method",
	"example", "because", "therefore", "important", "process",
}

var commonWords = map[string]struct{}{
	"that": {}, "this": {}, "with": {}, "from": {}, "they": {}, "them": {}, "have": {}, "been": {},
	"were": {}, "said": {}, "each": {}, "which": {}, "their": {}, "time": {}, "will": {}, "about": {},
	"would": {}, "there": {}, "could": {}, "other": {}, "more": {}, "very": {}, "what": {}, "know": {},
	"just": {}, "first": {}, "into": {}, "over": {}, "think": {}, "than": {}, "only": {}, "come": {},
	"also": {}, "work": {}, "make": {}, "through": {}, "example": {}, "when": {}, "where": {},
}

// ExtractTopics returns up to ten frequent, non-trivial words that occur more
// than once, most frequent first.
func ExtractTopics(text string) []string {
	type entry struct {
		word  string
		count int
	}

	index := map[string]int{}
	var entries []entry
	for _, w := range topicWordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, skip := commonWords[w]; skip {
			continue
		}
		if i, ok := index[w]; ok {
			entries[i].count++
			continue
		}
		index[w] = len(entries)
		entries = append(entries, entry{word: w, count: 1})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	topics := []string{}
	for i := 0; i < len(entries) && i < maxTopics; i++ {
		if entries[i].count > 1 {
			topics = append(topics, entries[i].word)
		}
	}
	return topics
}

// Chunk packs paragraphs greedily so a chunk only exceeds targetSize when a
// single paragraph does.
func Chunk(text string, targetSize int) []string {
	if targetSize <= 0 {
		targetSize = DefaultChunkSize
	}

	var (
		chunks  []string
		current []string
		size    int
	)
	for _, p := range Paragraphs(text) {
		n := utf8.RuneCountInString(p)
		if size+n > targetSize && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n\n"))
			current = []string{p}
			size = n
			continue
		}
		current = append(current, p)
		size += n
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, "\n\n"))
	}
	return chunks
}

type Validation struct {
	IsValid      bool     `json:"is_valid"`
	Length       int      `json:"length"`
	WordCount    int      `json:"word_count"`
	HasStructure bool     `json:"has_structure"`
	HasConcepts  bool     `json:"has_concepts"`
	Issues       []string `json:"issues"`
}

// Validate reports whether text has enough substance to generate a quiz.
func Validate(text string) Validation {
	v := Validation{
		Length: utf8.RuneCountInString(text),
		Issues: []string{},
	}

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minProcessedLength {
		v.Issues = append(v.Issues, "Content too short")
		return v
	}

	v.WordCount = len(wordPattern.FindAllString(text, -1))
	if v.WordCount < minWordCount {
		v.Issues = append(v.Issues, "Too few words")
		return v
	}

	paragraphs := strings.Split(text, "\n\n")
	sentences := sentenceEndPattern.Split(text, -1)
	v.HasStructure = len(paragraphs) > 1 && len(sentences) > 3

	lower := strings.ToLower(text)
	for _, indicator := range conceptIndicators {
		if strings.Contains(lower, indicator) {
			v.HasConcepts = true
			break
		}
	}

	v.IsValid = v.HasStructure && len(v.Issues) == 0
	return v
}
