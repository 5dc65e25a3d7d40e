// Package autoadd turns free text into record suggestions with a Gemini model.
package autoadd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.5-flash"

const prompt = "You extract financial transactions from free text such as receipt transcripts or chat messages.\n\n" +
	"Task:\n" +
	"- Find every distinct transaction mentioned in the text.\n" +
	"- Output STRICT JSON only: a JSON array of objects.\n\n" +
	"Each object may have these fields, omit the ones you cannot determine:\n" +
	"- \"amount\": string, the amount exactly as written, without currency symbols\n" +
	"- \"currency\": string, ISO 4217 code such as \"EUR\"\n" +
	"- \"date\": string, ISO format \"YYYY-MM-DD\"\n" +
	"- \"description\": string, a short merchant or purpose\n" +
	"- \"category\": string, a short category name such as \"Groceries\"\n\n" +
	"Return ONLY valid raw JSON. Do NOT use Markdown. Output must begin with \"[\" and end with \"]\".\n\n" +
	"Text:\n"

// generator is the subset of *genai.Models the parser depends on.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiParser implements portssvc.SuggestionParser.
type GeminiParser struct {
	models  generator
	model   string
	timeout time.Duration
}

var _ portssvc.SuggestionParser = (*GeminiParser)(nil)

// NewGeminiParser creates a Gemini API client authenticated with apiKey.
func NewGeminiParser(ctx context.Context, apiKey, model string) (*GeminiParser, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGeminiParser(client.Models, model), nil
}

func newGeminiParser(models generator, model string) *GeminiParser {
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiParser{models: models, model: model, timeout: 30 * time.Second}
}

// ParseSuggestions asks the model for suggestions and decodes its answer.
func (p *GeminiParser) ParseSuggestions(ctx context.Context, text string) ([]domain.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt + text}},
		},
	}
	resp, err := p.models.GenerateContent(ctx, p.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}
	return decodeSuggestions(raw)
}

type modelSuggestion struct {
	Amount      any     `json:"amount"`
	Currency    *string `json:"currency"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// decodeSuggestions parses the model output. Fields that do not parse are
// dropped rather than failing the whole answer.
func decodeSuggestions(raw string) ([]domain.Suggestion, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(cleanModelJSON(raw))))
	dec.UseNumber()

	var items []modelSuggestion
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("unmarshal model JSON: %w", err)
	}

	out := make([]domain.Suggestion, 0, len(items))
	for _, item := range items {
		var s domain.Suggestion
		switch v := item.Amount.(type) {
		case string:
			s.Amount = nonEmpty(v)
		case json.Number:
			s.Amount = nonEmpty(v.String())
		}
		s.CurrencyCode = nonEmptyPtr(item.Currency)
		s.Description = nonEmptyPtr(item.Description)
		s.CategoryName = nonEmptyPtr(item.Category)
		if item.Date != nil {
			if d, err := time.Parse("2006-01-02", strings.TrimSpace(*item.Date)); err == nil {
				s.Date = &d
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmptyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return nonEmpty(*s)
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
