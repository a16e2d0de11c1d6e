// File: services/intelligence/geminiOracle.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hudumahub/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiOracle implements DecisionOracle against the Gemini API, with a
// Redis-backed cache so repeated decisions for the same booking are stable.
type GeminiOracle struct {
	model *genai.GenerativeModel
	cache *RedisDecisionStore
}

func NewGeminiOracle(apiKey string, cache *RedisDecisionStore) *GeminiOracle {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiOracle{model: model, cache: cache}
}

// Decide asks the model for an accept/decline verdict on the booking request.
func (g *GeminiOracle) Decide(ctx context.Context, booking *models.Booking) (*models.BookingDecision, error) {
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, booking.ID); err == nil && cached != nil {
			return cached, nil
		}
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(decisionPrompt(booking)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	decision, err := parseDecision(raw)
	if err != nil {
		return nil, err
	}

	if g.cache != nil {
		_ = g.cache.Set(ctx, booking.ID, decision)
	}
	return decision, nil
}

// responseText concatenates the text parts of the first candidate. The API
// can return zero candidates when the prompt or completion is blocked.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func decisionPrompt(b *models.Booking) string {
	return fmt.Sprintf(`You screen incoming job requests for a %s provider on a Kenyan local-services marketplace.
Decide whether the provider should accept or decline this custom-priced request.

Service date: %s
Customer request: %q

Respond with strict JSON only, no markdown: {"action":"accept"|"decline","reason":"one short sentence"}`,
		b.Provider.ServiceType,
		b.ServiceDate.Format("2006-01-02 15:04"),
		b.RequestDetails,
	)
}

// parseDecision extracts the JSON verdict, tolerating code fences around it.
func parseDecision(raw string) (*models.BookingDecision, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decision models.BookingDecision
	if err := json.Unmarshal([]byte(cleaned), &decision); err != nil {
		return nil, fmt.Errorf("failed to parse oracle response: %w", err)
	}
	if !decision.Valid() {
		return nil, fmt.Errorf("oracle returned unknown action %q", decision.Action)
	}
	return &decision, nil
}
