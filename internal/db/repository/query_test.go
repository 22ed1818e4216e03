package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triviabank/trivia-api/internal/trivia"
)

func TestBuildQuestionQueryNoFilters(t *testing.T) {
	query, args := buildQuestionQuery(trivia.Filter{}, selectColumns)
	assert.Equal(t, "SELECT id, question, answer, category_id, difficulty FROM questions ORDER BY id ASC", query)
	assert.Empty(t, args)
}

func TestBuildQuestionQueryCategoryFilter(t *testing.T) {
	query, args := buildQuestionQuery(trivia.Filter{CategoryID: 3}, selectColumns)
	assert.Contains(t, query, "WHERE category_id = $1")
	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Equal(t, []interface{}{3}, args)
}

func TestBuildQuestionQuerySearchFilter(t *testing.T) {
	query, args := buildQuestionQuery(trivia.Filter{Search: "organ"}, selectColumns)
	assert.Contains(t, query, "question ILIKE $1")
	assert.Equal(t, []interface{}{"%organ%"}, args)
}

func TestBuildQuestionQueryExcludeFilter(t *testing.T) {
	query, args := buildQuestionQuery(trivia.Filter{ExcludeIDs: []int{1, 2, 3}}, selectColumns)
	assert.Contains(t, query, "NOT (id = ANY($1))")
	assert.Equal(t, []interface{}{[]int{1, 2, 3}}, args)
}

func TestBuildQuestionQueryFiltersComposeByAND(t *testing.T) {
	f := trivia.Filter{CategoryID: 2, Search: "title", ExcludeIDs: []int{9}}
	query, args := buildQuestionQuery(f, selectColumns)
	assert.Contains(t, query, "category_id = $1 AND question ILIKE $2 AND NOT (id = ANY($3))")
	assert.Len(t, args, 3)
}

func TestBuildQuestionQueryCountProjection(t *testing.T) {
	query, args := buildQuestionQuery(trivia.Filter{CategoryID: 1}, selectCount)
	assert.Equal(t, "SELECT COUNT(*) FROM questions WHERE category_id = $1", query)
	assert.NotContains(t, query, "ORDER BY")
	assert.Equal(t, []interface{}{1}, args)
}
