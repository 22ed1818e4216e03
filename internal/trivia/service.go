package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Rand is the randomness source used for quiz selection. math/rand satisfies
// it; tests substitute a deterministic sequence.
type Rand interface {
	Intn(n int) int
}

// Page is one window of the question listing together with the full match
// count the window was cut from.
type Page struct {
	Questions []Question
	Total     int
}

// Service implements the question-bank operations on top of a storage
// Gateway. It holds no cross-request state; quiz exclusion sets are supplied
// by the caller on every call.
type Service struct {
	store  Gateway
	rand   Rand
	logger zerolog.Logger
}

func NewService(store Gateway, rnd Rand, logger zerolog.Logger) *Service {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		store:  store,
		rand:   rnd,
		logger: logger.With().Str("component", "trivia_service").Logger(),
	}
}

// CategoryMap returns the full category directory keyed by id. An empty
// directory is a NotFound failure, never an empty success.
func (s *Service) CategoryMap(ctx context.Context) (map[int]string, error) {
	cats, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return nil, notFound(errors.New("category directory is empty"))
	}
	m := make(map[int]string, len(cats))
	for _, c := range cats {
		m[c.ID] = c.Type
	}
	return m, nil
}

// ListQuestions returns the requested page of the full question bank. A page
// beyond the last non-empty one is NotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (Page, error) {
	return s.pageOf(ctx, Filter{}, page, true)
}

// SearchQuestions returns the questions whose text contains term,
// case-insensitively. A present-but-empty term is a client error; an empty
// match set is a valid empty page.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (Page, error) {
	if strings.TrimSpace(term) == "" {
		return Page{}, badRequest(errors.New("search term must not be empty"))
	}
	return s.pageOf(ctx, Filter{Search: term}, page, false)
}

// QuestionsByCategory returns one category's questions plus the category's
// type label. Unknown category ids and empty pages are both NotFound.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (Page, string, error) {
	cat, ok, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return Page{}, "", fmt.Errorf("get category %d: %w", categoryID, err)
	}
	if !ok {
		return Page{}, "", notFound(fmt.Errorf("category %d does not exist", categoryID))
	}
	p, err := s.pageOf(ctx, Filter{CategoryID: categoryID}, page, true)
	if err != nil {
		return Page{}, "", err
	}
	return p, cat.Type, nil
}

// CreateQuestion validates and inserts a new question, returning its assigned
// id plus the refreshed requested page of the bank. Any missing field rejects
// the request before storage is touched. Once the insert has committed the
// create is reported as a success even if the listing refresh fails; only the
// listing portion degrades.
func (s *Service) CreateQuestion(ctx context.Context, q Question, page int) (int, Page, error) {
	if err := validateNewQuestion(q); err != nil {
		return 0, Page{}, unprocessable(err)
	}
	id, err := s.store.InsertQuestion(ctx, q)
	if err != nil {
		return 0, Page{}, unprocessable(fmt.Errorf("insert question: %w", err))
	}
	s.logger.Info().Int("question_id", id).Int("category", q.Category).Msg("question created")
	p, err := s.pageOf(ctx, Filter{}, page, false)
	if err != nil {
		s.logger.Error().Err(err).Int("question_id", id).Msg("listing refresh failed after create")
		return id, Page{Questions: []Question{}}, nil
	}
	return id, p, nil
}

// DeleteQuestion removes a question by id and returns the refreshed requested
// page of what remains. An unknown id is NotFound and leaves the store
// untouched. Once the delete has committed it is reported as a success even
// if the listing refresh fails.
func (s *Service) DeleteQuestion(ctx context.Context, id, page int) (Page, error) {
	deleted, err := s.store.DeleteQuestion(ctx, id)
	if err != nil {
		return Page{}, unprocessable(fmt.Errorf("delete question %d: %w", id, err))
	}
	if !deleted {
		return Page{}, notFound(fmt.Errorf("question %d does not exist", id))
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	p, err := s.pageOf(ctx, Filter{}, page, false)
	if err != nil {
		s.logger.Error().Err(err).Int("question_id", id).Msg("listing refresh failed after delete")
		return Page{Questions: []Question{}}, nil
	}
	return p, nil
}

// NextQuizQuestion draws one uniformly random question from the candidate set:
// the chosen category (AllCategories for the whole bank) minus the ids the
// caller has already seen. An exhausted candidate set returns nil, nil — quiz
// completion, not a failure.
func (s *Service) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error) {
	f := Filter{CategoryID: categoryID, ExcludeIDs: previous}
	candidates, err := s.store.FindQuestions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	q := candidates[s.rand.Intn(len(candidates))]
	return &q, nil
}

// pageOf cuts one page from the filtered, id-ordered question set. When
// emptyIsMissing is set an empty window maps to NotFound.
func (s *Service) pageOf(ctx context.Context, f Filter, page int, emptyIsMissing bool) (Page, error) {
	questions, err := s.store.FindQuestions(ctx, f)
	if err != nil {
		return Page{}, fmt.Errorf("find questions: %w", err)
	}
	total, err := s.store.CountQuestions(ctx, f)
	if err != nil {
		return Page{}, fmt.Errorf("count questions: %w", err)
	}
	window := Paginate(questions, page, QuestionsPerPage)
	if emptyIsMissing && len(window) == 0 {
		return Page{}, notFound(fmt.Errorf("page %d is beyond the last question", page))
	}
	if window == nil {
		// The envelope promises an array; an empty page must encode as [].
		window = []Question{}
	}
	return Page{Questions: window, Total: total}, nil
}

func validateNewQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("question text is required")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return errors.New("answer text is required")
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("difficulty must be between 1 and 5, got %d", q.Difficulty)
	}
	if q.Category <= 0 {
		return errors.New("category is required")
	}
	return nil
}
