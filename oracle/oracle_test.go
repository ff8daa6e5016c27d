package oracle_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/models"
	"github.com/bearcourt/bear-court-api/oracle"
)

func chatCompletionBody(t *testing.T, content string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "test-model",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]string{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	assert.NoError(t, err)
	return b
}

func newTestClient(srvURL string) oracle.Client {
	return oracle.New(&config.Config{
		OracleAPIKey:  "test-key",
		OracleBaseURL: srvURL,
		OracleModel:   "test-model",
	})
}

func TestJudgeParsesFencedVerdict(t *testing.T) {
	content := "```json\n" + `{
  "verdict_title": "The Case of the Cold Dinner",
  "fault_ratio": { "A": 40, "B": 60 },
  "law_reference": "Bear Kingdom Civil Code §12",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b", "c", "d", "e"]
}` + "\n```"

	var gotBody struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(t, content))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	verdict, err := client.Judge(context.Background(), oracle.Request{StatementA: "a side", StatementB: "b side"})
	assert.NoError(t, err)
	assert.Equal(t, "The Case of the Cold Dinner", verdict.VerdictTitle)
	assert.Equal(t, float64(60), verdict.FaultRatio.B)

	assert.Equal(t, "test-model", gotBody.Model)
	assert.Len(t, gotBody.Messages, 2)
	assert.Contains(t, gotBody.Messages[1].Content, "Plaintiff (side A): a side")
	assert.Contains(t, gotBody.Messages[1].Content, "Defendant (side B): b side")
	assert.NotContains(t, gotBody.Messages[1].Content, "[OBJECTION!]")
}

func TestJudgeEmbedsObjectionForReJudgment(t *testing.T) {
	content := `{
  "verdict_title": "t",
  "law_reference": "l",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b", "c", "d", "e"]
}`
	var userContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		userContent = body.Messages[len(body.Messages)-1].Content
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(t, content))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Judge(context.Background(), oracle.Request{
		StatementA: "a",
		StatementB: "b",
		Objection:  "they forgot my birthday too",
	})
	assert.NoError(t, err)
	assert.Contains(t, userContent, "[OBJECTION!]")
	assert.Contains(t, userContent, "they forgot my birthday too")
}

func TestJudgeMapsThrottlingToRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit reached", "type": "requests"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Judge(context.Background(), oracle.Request{StatementA: "a", StatementB: "b"})
	assert.Equal(t, models.ErrAdjudicationRateLimited, models.KindOf(err))
}

func TestJudgeMapsTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Judge(context.Background(), oracle.Request{StatementA: "a", StatementB: "b"})
	assert.Equal(t, models.ErrAdjudicationTransport, models.KindOf(err))
}

func TestJudgeRejectsUnparseableResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(chatCompletionBody(t, "I find both parties adorable and refuse to produce JSON."))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Judge(context.Background(), oracle.Request{StatementA: "a", StatementB: "b"})
	assert.Equal(t, models.ErrAdjudicationMalformed, models.KindOf(err))
}
