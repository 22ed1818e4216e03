package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triviabank/trivia-api/internal/trivia"
)

// Store is the Postgres-backed storage gateway. Reads run on pooled
// connections; writes run inside a per-call transaction so partial changes
// are rolled back and the connection released on every exit path.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// FindQuestions returns the questions matching the filter, ordered by id
// ascending.
func (s *Store) FindQuestions(ctx context.Context, f trivia.Filter) ([]trivia.Question, error) {
	query, args := buildQuestionQuery(f, selectColumns)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []trivia.Question
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

// CountQuestions returns how many questions match the filter.
func (s *Store) CountQuestions(ctx context.Context, f trivia.Filter) (int, error) {
	query, args := buildQuestionQuery(f, selectCount)
	var total int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}

// ListCategories returns every category ordered by id.
func (s *Store) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, type FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []trivia.Category
	for rows.Next() {
		var c trivia.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetCategory fetches one category; the bool reports whether it exists.
func (s *Store) GetCategory(ctx context.Context, id int) (trivia.Category, bool, error) {
	var c trivia.Category
	err := s.pool.QueryRow(ctx, `SELECT id, type FROM categories WHERE id = $1`, id).
		Scan(&c.ID, &c.Type)
	if errors.Is(err, pgx.ErrNoRows) {
		return trivia.Category{}, false, nil
	}
	if err != nil {
		return trivia.Category{}, false, fmt.Errorf("get category: %w", err)
	}
	return c, true, nil
}

// InsertQuestion stores a new question and returns its assigned id.
func (s *Store) InsertQuestion(ctx context.Context, q trivia.Question) (int, error) {
	var id int
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			`INSERT INTO questions (question, answer, category_id, difficulty)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			q.Question, q.Answer, q.Category, q.Difficulty,
		).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// DeleteQuestion removes a question by id; the bool reports whether a row
// was actually deleted.
func (s *Store) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	var deleted bool
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return deleted, nil
}
