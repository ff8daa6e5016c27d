package oracle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bearcourt/bear-court-api/oracle"
)

const verdictJSON = `{
  "verdict_title": "The Case of the Cold Dinner",
  "fault_ratio": { "A": 40, "B": 60 },
  "law_reference": "Bear Kingdom Civil Code §12",
  "analysis": "both sides wanted attention and asked for it sideways",
  "perspective_taking": "swap shoes for an evening",
  "bear_wisdom": "honey shared is honey doubled",
  "punishments": ["a", "b", "c", "d", "e"]
}`

func TestExtractJSONStripsCodeFences(t *testing.T) {
	raw := "```json\n" + verdictJSON + "\n```"
	payload, err := oracle.ExtractJSON(raw)
	assert.NoError(t, err)
	assert.Equal(t, byte('{'), payload[0])
	assert.Equal(t, byte('}'), payload[len(payload)-1])
	assert.NotContains(t, payload, "```")
}

func TestExtractJSONTrimsSurroundingProse(t *testing.T) {
	raw := "Here is my ruling:\n" + verdictJSON + "\nHope that helps!"
	payload, err := oracle.ExtractJSON(raw)
	assert.NoError(t, err)
	assert.NotContains(t, payload, "Hope that helps")

	verdict, err := oracle.ParseVerdict(raw)
	assert.NoError(t, err)
	assert.Equal(t, "The Case of the Cold Dinner", verdict.VerdictTitle)
}

func TestExtractJSONWithoutObject(t *testing.T) {
	_, err := oracle.ExtractJSON("the court is adjourned")
	assert.Error(t, err)
}

func TestParseVerdict(t *testing.T) {
	verdict, err := oracle.ParseVerdict(verdictJSON)
	assert.NoError(t, err)
	assert.Equal(t, "Bear Kingdom Civil Code §12", verdict.LawReference)
	assert.Equal(t, float64(40), verdict.FaultRatio.A)
	assert.Len(t, verdict.Punishments, 5)
}

func TestParseVerdictToleratesMissingFaultRatio(t *testing.T) {
	raw := `{
  "verdict_title": "t",
  "law_reference": "l",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b", "c", "d", "e"]
}`
	verdict, err := oracle.ParseVerdict(raw)
	assert.NoError(t, err)
	assert.Nil(t, verdict.FaultRatio)

	// presentation falls back to an even split
	assert.Equal(t, float64(50), verdict.DisplayFaultRatio().A)
}

func TestParseVerdictRejectsMissingFields(t *testing.T) {
	for _, field := range []string{"verdict_title", "law_reference", "analysis", "perspective_taking", "bear_wisdom"} {
		raw := fmt.Sprintf(`{
  "verdict_title": "t",
  "law_reference": "l",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b", "c", "d", "e"],
  %q: ""
}`, field)
		_, err := oracle.ParseVerdict(raw)
		assert.Error(t, err, field)
	}
}

func TestParseVerdictRejectsWrongPunishmentCount(t *testing.T) {
	raw := `{
  "verdict_title": "t",
  "law_reference": "l",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b"]
}`
	_, err := oracle.ParseVerdict(raw)
	assert.Error(t, err)
}

func TestParseVerdictDiscardsProviderFeedback(t *testing.T) {
	raw := `{
  "verdict_title": "t",
  "law_reference": "l",
  "analysis": "a",
  "perspective_taking": "p",
  "bear_wisdom": "w",
  "punishments": ["a", "b", "c", "d", "e"],
  "feedback": "like"
}`
	verdict, err := oracle.ParseVerdict(raw)
	assert.NoError(t, err)
	assert.Empty(t, verdict.Feedback)
}
