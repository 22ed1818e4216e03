//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

type apiResponse struct {
	Success         bool                     `json:"success"`
	Error           int                      `json:"error"`
	Message         string                   `json:"message"`
	Categories      map[string]string        `json:"categories"`
	Questions       []map[string]interface{} `json:"questions"`
	TotalQuestions  int                      `json:"total_questions"`
	CurrentCategory interface{}              `json:"current_category"`
	Deleted         int                      `json:"deleted"`
	Created         int                      `json:"created"`
	Question        map[string]interface{}   `json:"question"`
}

func baseURL() string {
	if val := os.Getenv("TRIVIA_API_BASE_URL"); val != "" {
		return val
	}
	return "http://localhost:8080"
}

func get(t *testing.T, path string) (int, apiResponse) {
	t.Helper()
	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return decode(t, resp)
}

func post(t *testing.T, path string, payload interface{}) (int, apiResponse) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return decode(t, resp)
}

func del(t *testing.T, path string) (int, apiResponse) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	return decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, apiResponse) {
	t.Helper()
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return resp.StatusCode, out
}

func questionID(t *testing.T, q map[string]interface{}) int {
	t.Helper()
	raw, ok := q["id"].(float64)
	if !ok {
		t.Fatalf("question has no numeric id: %v", q)
	}
	return int(raw)
}

func uniqueQuestionText(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
