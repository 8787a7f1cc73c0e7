package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/notetakerhq/notetaker-api/internal/models"
	"github.com/notetakerhq/notetaker-api/internal/providers/llm"
	"github.com/notetakerhq/notetaker-api/internal/services"
)

type fakeLLM struct {
	calls int
	raw   string
	err   error
}

func (f *fakeLLM) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	f.calls++
	return f.raw, f.err
}

func newLLMRouter(t *testing.T, provider llm.Provider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewLLMHandler(services.NewLLMService(provider, testLogger()), testLogger())

	r := gin.New()
	grp := r.Group("/api/v1/llm")
	grp.POST("/summarize", h.Summarize)
	grp.POST("/extract-action-items", h.ExtractActionItems)
	grp.POST("/chat", h.Chat)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSummarizeEndpoint_OK(t *testing.T) {
	fake := &fakeLLM{raw: " The team agreed to ship Friday. "}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/summarize", `{"transcript":"We will ship Friday."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got models.SummarizationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Summary != "The team agreed to ship Friday." {
		t.Errorf("Summary = %q", got.Summary)
	}
}

func TestSummarizeEndpoint_EmptyTranscript(t *testing.T) {
	fake := &fakeLLM{}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/summarize", `{"transcript":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fake.calls != 0 {
		t.Errorf("provider calls = %d, want 0", fake.calls)
	}
}

func TestSummarizeEndpoint_Unconfigured(t *testing.T) {
	r := newLLMRouter(t, nil)

	rec := postJSON(r, "/api/v1/llm/summarize", `{"transcript":"hello"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestExtractActionItemsEndpoint_FiltersBlanks(t *testing.T) {
	fake := &fakeLLM{raw: `{"action_items":["Ship on Friday","","John: write docs"]}`}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/extract-action-items",
		`{"transcript":"We will ship Friday. John will write docs."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got models.ActionItemsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"Ship on Friday", "John: write docs"}
	if !reflect.DeepEqual(got.ActionItems, want) {
		t.Errorf("ActionItems = %v, want %v", got.ActionItems, want)
	}
}

func TestExtractActionItemsEndpoint_ParseFailureIsGeneric(t *testing.T) {
	fake := &fakeLLM{raw: "no json here"}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/extract-action-items", `{"transcript":"hello"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var got APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Message != "an internal server error occurred" {
		t.Errorf("message = %q, parse detail must not leak", got.Message)
	}
	if strings.Contains(rec.Body.String(), "no json here") {
		t.Error("raw provider response leaked into the error body")
	}
}

func TestChatEndpoint_OK(t *testing.T) {
	fake := &fakeLLM{raw: "The roadmap ships in Q3."}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/chat",
		`{"transcript_context":"We ship in Q3.","user_query":"When do we ship?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got models.ChatResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.AIResponse != "The roadmap ships in Q3." {
		t.Errorf("AIResponse = %q", got.AIResponse)
	}
}

func TestChatEndpoint_EmptyQuery(t *testing.T) {
	fake := &fakeLLM{}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/chat",
		`{"transcript_context":"We ship in Q3.","user_query":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fake.calls != 0 {
		t.Errorf("provider calls = %d, want 0", fake.calls)
	}
}

func TestChatEndpoint_InvalidBody(t *testing.T) {
	fake := &fakeLLM{}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/chat", `{"transcript_context":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if fake.calls != 0 {
		t.Errorf("provider calls = %d, want 0", fake.calls)
	}
}

func TestLLMEndpoint_ProviderErrorIsGeneric(t *testing.T) {
	fake := &fakeLLM{err: errors.New("api key leaked in error: gsk-secret")}
	r := newLLMRouter(t, fake)

	rec := postJSON(r, "/api/v1/llm/summarize", `{"transcript":"hello"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "gsk-secret") {
		t.Error("provider error detail leaked into the response body")
	}
}
