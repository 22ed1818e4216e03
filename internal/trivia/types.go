package trivia

import "context"

// QuestionsPerPage is the fixed window size for every question listing.
const QuestionsPerPage = 10

// AllCategories is the sentinel category id meaning "no category filter".
const AllCategories = 0

// Question is a single trivia entry. Questions are immutable after creation;
// the only lifecycle transitions are insert and delete.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category is a display label for a group of questions. The catalog is
// read-only from this service's perspective; seeding happens via migrations.
type Category struct {
	ID   int
	Type string
}

// Filter narrows question retrieval. The zero value matches every question.
// Filters compose by logical AND.
type Filter struct {
	// CategoryID restricts to an exact category; AllCategories disables it.
	CategoryID int
	// Search matches as a case-insensitive substring of the question text.
	Search string
	// ExcludeIDs removes the listed question ids from the result.
	ExcludeIDs []int
}

// Gateway is the storage surface consumed by the service. Implementations
// must return questions ordered by id ascending so pagination stays stable,
// and must commit or roll back each write before returning.
type Gateway interface {
	FindQuestions(ctx context.Context, f Filter) ([]Question, error)
	CountQuestions(ctx context.Context, f Filter) (int, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, bool, error)
	InsertQuestion(ctx context.Context, q Question) (int, error)
	DeleteQuestion(ctx context.Context, id int) (bool, error)
}
