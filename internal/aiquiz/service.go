package aiquiz

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
	"github.com/sirupsen/logrus"
)

const (
	minChunkLength = 20
	maxSeed        = 1000
)

type Service interface {
	// GenerateQuestions returns at most req.QuestionCount questions. Fewer,
	// or none, is a normal outcome when the model misbehaves or generation
	// is disabled.
	GenerateQuestions(ctx context.Context, req GenerateRequest) ([]question.Question, error)
	Enabled() bool
}

type Options struct {
	Model              string
	Temperature        float32
	MaxTokens          int
	TopP               float32
	CallTimeout        time.Duration
	DuplicateThreshold float64
	// Rand drives type, seed and focus selection. Nil means a time-seeded source.
	Rand *rand.Rand
}

func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Model:              s.AIModel,
		Temperature:        s.AITemperature,
		MaxTokens:          s.AIMaxTokens,
		TopP:               s.AITopP,
		CallTimeout:        s.AICallTimeout,
		DuplicateThreshold: s.DuplicateThreshold,
	}
}

type service struct {
	provider Provider
	opts     Options
	rng      *rand.Rand
}

// NewService wires a generator around provider, which may be nil when no
// credential is configured.
func NewService(provider Provider, opts Options) Service {
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 500
	}
	if opts.TopP == 0 {
		opts.TopP = 0.8
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = 30 * time.Second
	}
	if opts.DuplicateThreshold <= 0 {
		opts.DuplicateThreshold = DefaultDuplicateThreshold
	}

	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}

	return &service{provider: provider, opts: opts, rng: rng}
}

func (s *service) Enabled() bool {
	return s.provider != nil
}

func (s *service) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]question.Question, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		log.Error("[AIQUIZ] Completion client not initialized, skipping generation")
		return []question.Question{}, nil
	}
	if req.QuestionCount < 1 {
		return []question.Question{}, nil
	}

	types := req.QuestionTypes
	if len(types) == 0 {
		types = question.AllTypes
	}
	difficulty := req.Difficulty
	if !difficulty.IsValid() {
		difficulty = question.DifficultyMedium
	}

	log.WithFields(logrus.Fields{
		"count":      req.QuestionCount,
		"difficulty": difficulty,
	}).Info("[AIQUIZ] Starting quiz generation")

	chunks := SplitForQuestions(req.Content, req.QuestionCount)
	if len(chunks) == 0 {
		log.Error("[AIQUIZ] No content chunks available")
		return []question.Question{}, nil
	}

	questions := make([]question.Question, 0, req.QuestionCount)
	attempts := min(req.QuestionCount, len(chunks)*2)

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("[AIQUIZ] Generation interrupted")
			break
		}

		qType := types[s.rng.IntN(len(types))]
		chunk := chunks[i%len(chunks)]
		if len(strings.TrimSpace(chunk)) < minChunkLength {
			continue
		}

		seed := s.rng.IntN(maxSeed) + 1
		focus := FocusAspects[s.rng.IntN(len(FocusAspects))]

		q, err := s.synthesizeOne(ctx, chunk, qType, difficulty, seed, focus)
		if err != nil {
			log.WithError(err).WithField("type", qType).Warn("[AIQUIZ] No question produced")
			continue
		}
		if IsDuplicate(q, questions, s.opts.DuplicateThreshold) {
			log.WithField("question", q.Text).Debug("[AIQUIZ] Dropped near-duplicate question")
			continue
		}

		questions = append(questions, q)
		log.Infof("[AIQUIZ] Generated question %d/%d", len(questions), req.QuestionCount)
		if len(questions) >= req.QuestionCount {
			break
		}
	}

	log.Infof("[AIQUIZ] Quiz generation completed: %d questions generated", len(questions))
	return questions, nil
}

// synthesizeOne runs one bounded completion call. Timeouts surface as
// errors like any other failure.
func (s *service) synthesizeOne(ctx context.Context, chunk string, t question.Type, difficulty question.Difficulty, seed int, focus string) (question.Question, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.opts.CallTimeout)
	defer cancel()

	raw, err := s.provider.Complete(callCtx, CompletionRequest{
		System:      systemPrompt,
		User:        BuildUserPrompt(chunk, t, difficulty, seed, focus),
		Model:       s.opts.Model,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
		TopP:        s.opts.TopP,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return question.Question{}, errTimeout
		}
		return question.Question{}, err
	}

	return ParseResponse(raw, t)
}

var errTimeout = errors.New("completion call timed out")
