//go:build integration
// +build integration

package integration

import (
	"net/http"
	"strconv"
	"testing"
)

// These tests run against a live server with migrated, seeded categories:
//
//	TRIVIA_API_BASE_URL=http://localhost:8080 go test -tags integration ./tests/integration/...

func TestCategoriesEndpoint(t *testing.T) {
	status, resp := get(t, "/categories")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if !resp.Success || len(resp.Categories) == 0 {
		t.Fatalf("expected a non-empty category map, got %+v", resp)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	text := uniqueQuestionText("integration-question")

	status, before := get(t, "/questions")
	if status != http.StatusOK {
		t.Fatalf("list questions failed: %d", status)
	}

	status, created := post(t, "/questions", map[string]interface{}{
		"question":   text,
		"answer":     "integration answer",
		"difficulty": 1,
		"category":   1,
	})
	if status != http.StatusOK || !created.Success {
		t.Fatalf("create failed: %d %+v", status, created)
	}
	if created.TotalQuestions != before.TotalQuestions+1 {
		t.Fatalf("total did not grow by one: before=%d after=%d", before.TotalQuestions, created.TotalQuestions)
	}

	status, found := post(t, "/questions/search", map[string]string{"searchTerm": text})
	if status != http.StatusOK || found.TotalQuestions < 1 {
		t.Fatalf("created question not searchable: %d %+v", status, found)
	}
	if questionID(t, found.Questions[0]) != created.Created {
		t.Fatalf("search returned a different question: %+v", found.Questions[0])
	}

	status, deleted := del(t, "/questions/"+strconv.Itoa(created.Created))
	if status != http.StatusOK || deleted.Deleted != created.Created {
		t.Fatalf("delete failed: %d %+v", status, deleted)
	}
	if deleted.TotalQuestions != before.TotalQuestions {
		t.Fatalf("total did not return to baseline: %d != %d", deleted.TotalQuestions, before.TotalQuestions)
	}
}

func TestDeleteUnknownQuestion(t *testing.T) {
	status, resp := del(t, "/questions/99999999")
	if status != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", status)
	}
	if resp.Success || resp.Message != "resource not found" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestSearchMissingTerm(t *testing.T) {
	status, resp := post(t, "/questions/search", map[string]string{})
	if status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", status)
	}
	if resp.Success || resp.Message != "bad request" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestQuizDrawsUnseenQuestions(t *testing.T) {
	seen := []int{}
	for i := 0; i < 3; i++ {
		status, resp := post(t, "/quizzes", map[string]interface{}{
			"previous_questions": seen,
			"quiz_category":      map[string]int{"id": 0},
		})
		if status != http.StatusOK || !resp.Success {
			t.Fatalf("quiz call failed: %d %+v", status, resp)
		}
		if resp.Question == nil {
			// Bank exhausted; valid terminal state.
			return
		}
		id := questionID(t, resp.Question)
		for _, prev := range seen {
			if prev == id {
				t.Fatalf("question %d repeated despite exclusion set %v", id, seen)
			}
		}
		seen = append(seen, id)
	}
}
