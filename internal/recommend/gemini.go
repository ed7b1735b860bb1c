package recommend

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sgn7/packmate/pkg/entity"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

	// DefaultTimeout bounds the recommendation round-trip. A hung
	// external service must never stall template synthesis.
	DefaultTimeout = 30 * time.Second
)

// GeminiRecommender asks the Gemini generateContent API which catalog items
// fit a calendar event. Every failure path (blank key, network error, bad
// status, unparseable answer) degrades to an empty recommendation.
type GeminiRecommender struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGemini(apiKey string, timeout time.Duration) *GeminiRecommender {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GeminiRecommender{
		apiKey:   apiKey,
		endpoint: geminiEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiRecommender) Recommend(ctx context.Context, event entity.CalendarEvent, catalog []entity.Item) []int64 {
	logger := slog.Default().With(slog.String("component", "gemini_recommender"), slog.String("event_id", event.ID))
	if g.apiKey == "" {
		logger.Warn("recommendation skipped: blank api key")
		return nil
	}
	if len(catalog) == 0 {
		return nil
	}

	body, err := sonic.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(event, catalog)}}},
		},
		GenerationConfig: geminiGenConfig{Temperature: 0.3, MaxOutputTokens: 256},
	})
	if err != nil {
		logger.Error("recommendation failed: encoding request", slog.String("error", err.Error()))
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+"?key="+g.apiKey, bytes.NewReader(body))
	if err != nil {
		logger.Error("recommendation failed: building request", slog.String("error", err.Error()))
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("recommendation failed: request error", slog.String("error", err.Error()))
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Error("recommendation failed: unexpected status", slog.Int("status", resp.StatusCode))
		return nil
	}

	var parsed geminiResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Error("recommendation failed: decoding response", slog.String("error", err.Error()))
		return nil
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil
	}
	return parseIDList(parsed.Candidates[0].Content.Parts[0].Text)
}

func buildPrompt(event entity.CalendarEvent, catalog []entity.Item) string {
	var b strings.Builder
	b.WriteString("You help a user avoid forgetting items. Given an event and their item catalog, ")
	b.WriteString("answer with a comma-separated list of item ids to bring, and nothing else. ")
	b.WriteString("Answer with an empty string if nothing fits.\n\nEvent:\n")
	fmt.Fprintf(&b, "title: %s\n", event.Title)
	if event.Description != "" {
		fmt.Fprintf(&b, "description: %s\n", event.Description)
	}
	if event.Location != "" {
		fmt.Fprintf(&b, "location: %s\n", event.Location)
	}
	if len(event.Categories) > 0 {
		fmt.Fprintf(&b, "categories: %s\n", strings.Join(event.Categories, ", "))
	}
	b.WriteString("\nCatalog:\n")
	for _, item := range catalog {
		fmt.Fprintf(&b, "%d: %s (%s)\n", item.ID, item.Name, item.Category)
	}
	return b.String()
}

// parseIDList tolerates whitespace and stray tokens in the model's answer;
// anything that is not an integer is dropped.
func parseIDList(text string) []int64 {
	ids := make([]int64, 0)
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
