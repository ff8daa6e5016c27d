package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bearcourt/bear-court-api/models"
)

// ExtractJSON pulls the outermost JSON object out of a raw oracle response.
// Providers routinely wrap the object in commentary or markdown code fences,
// so everything before the first '{' and after the last '}' is discarded.
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return cleaned[start : end+1], nil
}

// ParseVerdict extracts and validates a verdict from the raw response text.
// Missing required fields are an error, never silently defaulted; the only
// tolerated omission is fault_ratio, which stays nil on the stored verdict.
func ParseVerdict(raw string) (*models.Verdict, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	verdict := &models.Verdict{}
	if err := json.Unmarshal([]byte(payload), verdict); err != nil {
		return nil, fmt.Errorf("failed to decode verdict JSON: %w", err)
	}

	required := map[string]string{
		"verdict_title":      verdict.VerdictTitle,
		"law_reference":      verdict.LawReference,
		"analysis":           verdict.Analysis,
		"perspective_taking": verdict.PerspectiveTaking,
		"bear_wisdom":        verdict.BearWisdom,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("verdict is missing required field %q", field)
		}
	}

	if len(verdict.Punishments) != models.PunishmentCount {
		return nil, fmt.Errorf("verdict carries %d punishments, want %d", len(verdict.Punishments), models.PunishmentCount)
	}

	// feedback belongs to the participants, never the provider
	verdict.Feedback = ""
	return verdict, nil
}
