package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"momentum/internal/goalarea"
)

// ExtractedWin is a candidate win awaiting user confirmation.
type ExtractedWin struct {
	Title        string      `json:"title"`
	GoalAreaID   goalarea.ID `json:"goalAreaId"`
	GoalAreaName string      `json:"goalAreaName"`
	Confidence   float64     `json:"confidence"`
}

// Source identifies which path produced an extraction result. The two
// paths behave differently on purpose: the model may return zero or many
// wins, the keyword fallback always returns exactly one.
type Source string

const (
	SourceModel   Source = "model"
	SourceKeyword Source = "keyword"
)

// Generator produces a completion for a prompt. Satisfied by the
// Anthropic-backed client; faked in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Extractor struct {
	gen Generator
}

// NewExtractor builds an extractor. gen may be nil when no model
// credential is configured; extraction then uses keywords only.
func NewExtractor(gen Generator) *Extractor {
	return &Extractor{gen: gen}
}

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// Extract maps a transcript to candidate wins. The model path is tried
// first when configured; any failure there degrades to the keyword
// fallback. The model reporting zero wins is a valid result, distinct
// from a parse failure.
func (e *Extractor) Extract(ctx context.Context, transcript string) ([]ExtractedWin, Source) {
	if e.gen == nil {
		return keywordFallback(transcript), SourceKeyword
	}

	reply, err := e.gen.Generate(ctx, extractionPrompt(transcript))
	if err != nil {
		slog.Error("model extraction failed", "error", err)
		return keywordFallback(transcript), SourceKeyword
	}

	raw := jsonObjectRe.FindString(reply)
	if raw == "" {
		return keywordFallback(transcript), SourceKeyword
	}

	var parsed struct {
		Wins []ExtractedWin `json:"wins"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return keywordFallback(transcript), SourceKeyword
	}
	if parsed.Wins == nil {
		parsed.Wins = []ExtractedWin{}
	}
	return parsed.Wins, SourceModel
}

func extractionPrompt(transcript string) string {
	var areas strings.Builder
	for _, d := range goalarea.Registry {
		fmt.Fprintf(&areas, "- %s: %s\n", d.ID, d.Name)
	}

	return fmt.Sprintf(`You are a helpful assistant that extracts personal wins/accomplishments from voice transcripts.

Goal Areas:
%s
Transcript: %q

Extract any wins/accomplishments mentioned. For each win:
1. Create a concise title (under 50 chars)
2. Assign to the most appropriate goal area
3. Rate confidence 0-1 based on how clearly it matches

Respond in JSON format:
{
  "wins": [
    { "title": "...", "goalAreaId": "...", "goalAreaName": "...", "confidence": 0.0 }
  ]
}

If no clear wins are found, return {"wins": []}.
Only extract actual accomplishments, not intentions or plans.`, areas.String(), transcript)
}

// keywordFallback scans goal areas in registry order and emits exactly
// one win: the first keyword match at 0.7 confidence, or Work: Strategic
// at 0.5 when nothing matches.
func keywordFallback(transcript string) []ExtractedWin {
	lower := strings.ToLower(transcript)
	title := truncateTitle(transcript)

	for _, d := range goalarea.Registry {
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				return []ExtractedWin{{
					Title:        title,
					GoalAreaID:   d.ID,
					GoalAreaName: d.Name,
					Confidence:   0.7,
				}}
			}
		}
	}

	def, _ := goalarea.Lookup(goalarea.WorkStrategic)
	return []ExtractedWin{{
		Title:        title,
		GoalAreaID:   def.ID,
		GoalAreaName: def.Name,
		Confidence:   0.5,
	}}
}

func truncateTitle(s string) string {
	r := []rune(s)
	if len(r) <= 50 {
		return s
	}
	return string(r[:47]) + "..."
}
