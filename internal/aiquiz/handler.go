package aiquiz

import (
	"encoding/json"
	"net/http"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/question"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) PreviewQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req := PreviewRequest{NumQuestions: 5}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !h.service.Enabled() {
		http.Error(w, "question generation is not configured", http.StatusServiceUnavailable)
		return
	}

	types := make([]question.Type, 0, len(req.QuestionTypes))
	for _, t := range req.QuestionTypes {
		types = append(types, question.Type(t))
	}
	difficulty := question.Difficulty(req.Difficulty)
	if difficulty == "" {
		difficulty = question.DifficultyMedium
	}

	questions, err := h.service.GenerateQuestions(r.Context(), GenerateRequest{
		Content:       req.Content,
		QuestionCount: req.NumQuestions,
		Difficulty:    difficulty,
		QuestionTypes: types,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, PreviewResponse{Questions: questions})
}
