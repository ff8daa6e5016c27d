package oracle

// go generate: mockery --name Client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/bearcourt/bear-court-api/config"
	"github.com/bearcourt/bear-court-api/models"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"

	// the provider runs hot so the verdicts stay playful rather than clinical
	verdictTemperature = 1.3
)

const personaPrompt = `You are "Judge Bear", an AI relationship mediator for two-person disputes.

PERSONA
1. No baby talk and no fairy-tale sweetness. You are a laid-back, worldly old
   friend: humorous, but with real depth.
2. Write long, well-paragraphed prose in the analysis and perspective sections
   (separate paragraphs with blank lines, no numbered lists).
3. The reconciliation tasks must be concrete, doable, a little romantic or a
   little silly (for example "dry their hair for them", "go eat street food
   together"). Abstract advice is forbidden.

OUTPUT
Respond with strict JSON only:
{
  "verdict_title": "title (witty, precise)",
  "fault_ratio": { "A": 40, "B": 60 },
  "law_reference": "a fictive bear-kingdom statute",
  "analysis": "deep diagnosis of both sides' underlying needs",
  "perspective_taking": "what each side should understand about the other",
  "bear_wisdom": "one aphorism",
  "punishments": ["task 1", "task 2", "task 3", "task 4", "task 5"]
}
The punishments array must contain exactly five entries.`

// Request carries the material the oracle adjudicates on
type Request struct {
	StatementA string
	StatementB string
	// Objection, when non-empty, switches the call into re-judgment mode
	Objection string
}

// Client produces a verdict from the two statements
type Client interface {
	Judge(ctx context.Context, req Request) (*models.Verdict, error)
}

type oracleClient struct {
	client *openai.Client
	model  string
}

// New builds an oracle client from the config, falling back to the public
// DeepSeek endpoint and model when unset
func New(conf *config.Config) Client {
	cfg := openai.DefaultConfig(conf.OracleAPIKey)
	cfg.BaseURL = defaultBaseURL
	if conf.OracleBaseURL != "" {
		cfg.BaseURL = conf.OracleBaseURL
	}
	model := defaultModel
	if conf.OracleModel != "" {
		model = conf.OracleModel
	}
	return &oracleClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *oracleClient) Judge(ctx context.Context, req Request) (*models.Verdict, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: verdictTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: personaPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent(req)},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return nil, models.NewAPIError(models.ErrAdjudicationRateLimited, "the oracle is throttling requests", err)
		}
		return nil, models.NewAPIError(models.ErrAdjudicationTransport, "failed to reach the oracle", err)
	}

	if len(resp.Choices) == 0 {
		return nil, models.NewAPIError(models.ErrAdjudicationMalformed, "oracle returned no choices", nil)
	}

	raw := resp.Choices[0].Message.Content
	verdict, err := ParseVerdict(raw)
	if err != nil {
		zap.S().Warnw("discarding unparseable oracle response",
			"error", err,
		)
		return nil, models.NewAPIError(models.ErrAdjudicationMalformed, "oracle response could not be parsed", err)
	}
	return verdict, nil
}

// userContent embeds both statements with clear role labels; re-judgments get
// the objection appended with an explicit instruction to reassess rather than
// merely append.
func userContent(req Request) string {
	content := fmt.Sprintf("[CASE FILE]\nPlaintiff (side A): %s\n\nDefendant (side B): %s",
		req.StatementA, req.StatementB)
	if req.Objection != "" {
		content += fmt.Sprintf("\n\n[OBJECTION!]\nOne side has filed a supplementary statement: %q\n\n"+
			"Re-evaluate the whole situation in light of the new material. Gently treat the omission "+
			"as a missing perspective rather than deliberate concealment, and produce a fresh, full verdict.",
			req.Objection)
	}
	return content
}
