package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/internal/logging"
)

// Handlers exposes the question-bank REST endpoints. Every response, success
// or failure, is wrapped in the {success, ...} envelope.
type Handlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandlers(svc *Service, logger zerolog.Logger) *Handlers {
	return &Handlers{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Mount attaches every endpoint to the given router.
func (h *Handlers) Mount(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{categoryID}/questions", h.QuestionsByCategory)
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Delete("/questions/{questionID}", h.DeleteQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Post("/quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.CategoryMap(r.Context())
	if err != nil {
		h.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}

// ListQuestions handles GET /questions?page=N.
func (h *Handlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	categories, err := h.svc.CategoryMap(r.Context())
	if err != nil {
		h.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"categories":       categories,
		"current_category": nil,
	})
}

// DeleteQuestion handles DELETE /questions/{questionID}.
func (h *Handlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "questionID"))
	if err != nil {
		h.respondError(w, r, notFound(err), http.StatusNotFound)
		return
	}
	page, err := h.svc.DeleteQuestion(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         id,
		"questions":       page.Questions,
		"total_questions": page.Total,
	})
}

// CreateQuestion handles POST /questions.
func (h *Handlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question   string `json:"question"`
		Answer     string `json:"answer"`
		Difficulty int    `json:"difficulty"`
		Category   int    `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, unprocessable(err), http.StatusUnprocessableEntity)
		return
	}
	id, page, err := h.svc.CreateQuestion(r.Context(), Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	}, pageParam(r))
	if err != nil {
		h.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         id,
		"questions":       page.Questions,
		"total_questions": page.Total,
	})
}

// SearchQuestions handles POST /questions/search.
func (h *Handlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest(err), http.StatusBadRequest)
		return
	}
	page, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, pageParam(r))
	if err != nil {
		h.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": nil,
	})
}

// QuestionsByCategory handles GET /categories/{categoryID}/questions.
func (h *Handlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		h.respondError(w, r, notFound(err), http.StatusNotFound)
		return
	}
	page, label, err := h.svc.QuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": label,
	})
}

// NextQuizQuestion handles POST /quizzes. An exhausted candidate set is a
// success with a null question, signalling quiz completion.
func (h *Handlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PreviousQuestions []int `json:"previous_questions"`
		QuizCategory      struct {
			ID int `json:"id"`
		} `json:"quiz_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, r, badRequest(err), http.StatusBadRequest)
		return
	}
	question, err := h.svc.NextQuizQuestion(r.Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		h.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": question,
	})
}

// pageParam reads the page query parameter, defaulting to 1 when it is
// absent, non-numeric, or below 1.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("response encode failed")
	}
}

// respondError translates a failure into the error envelope. Typed
// StatusErrors carry their own status; anything else falls back to the
// endpoint's storage-failure status.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	status := fallback
	var se *StatusError
	if errors.As(err, &se) {
		status = se.Status
	}
	logger := h.logger
	if reqLogger := logging.FromContext(r.Context()); reqLogger.GetLevel() != zerolog.Disabled {
		logger = reqLogger
	}
	evt := logger.Warn()
	if status == http.StatusInternalServerError {
		evt = logger.Error()
	}
	evt.Err(err).Int("status", status).Msg("request failed")
	h.respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   status,
		"message": StatusMessage(status),
	})
}
