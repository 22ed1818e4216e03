package repository

import (
	"fmt"
	"strings"

	"github.com/triviabank/trivia-api/internal/trivia"
)

type projection int

const (
	selectColumns projection = iota
	selectCount
)

// buildQuestionQuery translates a question filter into SQL with positional
// args. Filters compose by AND; row projections always order by id ascending
// so pagination windows stay reproducible.
func buildQuestionQuery(f trivia.Filter, p projection) (string, []interface{}) {
	var sb strings.Builder
	if p == selectCount {
		sb.WriteString(`SELECT COUNT(*) FROM questions`)
	} else {
		sb.WriteString(`SELECT id, question, answer, category_id, difficulty FROM questions`)
	}

	var conditions []string
	var args []interface{}

	if f.CategoryID != trivia.AllCategories {
		args = append(args, f.CategoryID)
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conditions = append(conditions, fmt.Sprintf("question ILIKE $%d", len(args)))
	}
	if len(f.ExcludeIDs) > 0 {
		args = append(args, f.ExcludeIDs)
		conditions = append(conditions, fmt.Sprintf("NOT (id = ANY($%d))", len(args)))
	}

	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	if p == selectColumns {
		sb.WriteString(" ORDER BY id ASC")
	}
	return sb.String(), args
}
