package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/infrastructure/logger"
	"github.com/gdugdh24/roommate-backend/internal/matching"
)

const defaultModel = "gemini-1.5-flash"

// GeminiClient writes the "why you two work" blurb and conversation
// starters shown once a roommate request is accepted.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    *zap.Logger
}

func NewGeminiClient(ctx context.Context, apiKey string, log *zap.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel(defaultModel)
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// ExplainMatch returns one or two sentences on why the pair fits. When the
// API is unavailable a canned explanation built from the breakdown is used.
func (c *GeminiClient) ExplainMatch(ctx context.Context, a, b *domain.Profile, breakdown matching.Breakdown) (string, error) {
	prompt := fmt.Sprintf(`
		Two students just agreed to become roommates.
		Person A: %s
		Person B: %s
		Compatibility score (A's view of B): %d%%, penalties: %s

		Task: Write a short, warm explanation (1-2 sentences) of why they should live well together.
		Mention one concrete shared habit. Do not mention the score.
		Output: Just the explanation text.
	`, describe(a), describe(b), breakdown.Score, describePenalties(breakdown))

	text, err := c.generate(ctx, prompt)
	if err != nil || text == "" {
		c.log.Warn("gemini unavailable, using fallback explanation", zap.Error(err))
		return FallbackExplanation(a, b, breakdown), nil
	}
	return text, nil
}

// Icebreakers returns up to three opening lines A could send to B.
func (c *GeminiClient) Icebreakers(ctx context.Context, a, b *domain.Profile) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 friendly first messages for two new roommates.
		Person A hobbies: %v, program: %s
		Person B hobbies: %v, program: %s

		Task: Create 3 distinct opening lines that Person A could send to Person B
		about moving in together. Focus on shared hobbies or logistics.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`, a.Hobbies, a.Program, b.Hobbies, b.Program)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	icebreakers, err := parseIcebreakers(text)
	if err != nil {
		c.log.Debug("unparseable icebreakers", zap.String("raw", logger.TruncateForLog(text, 200)))
		return nil, err
	}
	if len(icebreakers) > 3 {
		icebreakers = icebreakers[:3]
	}
	return icebreakers, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func parseIcebreakers(text string) ([]string, error) {
	// Clean up markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var icebreakers []string
	err := json.Unmarshal([]byte(text), &icebreakers)
	if err == nil {
		return icebreakers, nil
	}

	// Fallback: one message per line
	icebreakers = nil
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "[") && !strings.HasSuffix(line, "]") {
			icebreakers = append(icebreakers, line)
		}
	}
	if len(icebreakers) == 0 {
		return nil, fmt.Errorf("failed to parse icebreakers: %w", err)
	}
	return icebreakers, nil
}

func describe(p *domain.Profile) string {
	return fmt.Sprintf("%s, studies %s, sleep %s, cleanliness %d/5, social energy %d/5, guests %s, hobbies %v",
		p.FirstName, p.Program, p.SleepSchedule, p.Cleanliness, p.SocialEnergy, p.GuestsFrequency, p.Hobbies)
}

func describePenalties(b matching.Breakdown) string {
	if len(b.Penalties) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(b.Penalties))
	for _, p := range b.Penalties {
		parts = append(parts, fmt.Sprintf("%s -%d", p.Reason, p.Points))
	}
	return strings.Join(parts, ", ")
}

// FallbackExplanation is used whenever the model cannot be reached.
func FallbackExplanation(a, b *domain.Profile, breakdown matching.Breakdown) string {
	if shared := matching.SharedHobbies(a, b); shared > 0 {
		return fmt.Sprintf("%s and %s share %d hobbies, which makes a great start for living together.", a.FirstName, b.FirstName, shared)
	}
	if a.SleepSchedule != "" && a.SleepSchedule == b.SleepSchedule {
		return fmt.Sprintf("%s and %s keep the same %s schedule, so quiet hours should be easy.", a.FirstName, b.FirstName, a.SleepSchedule)
	}
	if breakdown.Tier == matching.TierHigh {
		return fmt.Sprintf("%s and %s line up on most day-to-day habits.", a.FirstName, b.FirstName)
	}
	return fmt.Sprintf("%s and %s both said yes. Talk through house rules early and you'll be set.", a.FirstName, b.FirstName)
}
