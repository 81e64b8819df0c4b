package voice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"momentum/internal/goalarea"
	"momentum/internal/voice"
)

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestKeywordFallbackMatch(t *testing.T) {
	ex := voice.NewExtractor(nil)
	transcript := "Just did a 20 minute Peloton ride"

	wins, source := ex.Extract(context.Background(), transcript)

	if source != voice.SourceKeyword {
		t.Errorf("source = %q, want keyword", source)
	}
	if len(wins) != 1 {
		t.Fatalf("got %d wins, want exactly 1", len(wins))
	}
	if wins[0].GoalAreaID != goalarea.PhysicalHealth {
		t.Errorf("goal area = %q, want physical_health", wins[0].GoalAreaID)
	}
	if wins[0].Confidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", wins[0].Confidence)
	}
	if wins[0].Title != transcript {
		t.Errorf("title = %q, want transcript unchanged", wins[0].Title)
	}
}

func TestKeywordFallbackCaseInsensitive(t *testing.T) {
	ex := voice.NewExtractor(nil)

	wins, _ := ex.Extract(context.Background(), "PELOTON")
	if wins[0].GoalAreaID != goalarea.PhysicalHealth {
		t.Errorf("goal area = %q, want physical_health", wins[0].GoalAreaID)
	}
}

func TestKeywordFallbackRegistryOrder(t *testing.T) {
	ex := voice.NewExtractor(nil)

	// "run" (physical) and "journal" (mental) both match; physical
	// health comes first in the registry.
	wins, _ := ex.Extract(context.Background(), "journal about my run")
	if wins[0].GoalAreaID != goalarea.PhysicalHealth {
		t.Errorf("goal area = %q, want physical_health", wins[0].GoalAreaID)
	}
}

func TestKeywordFallbackDefault(t *testing.T) {
	ex := voice.NewExtractor(nil)
	transcript := strings.TrimSpace(strings.Repeat("flibber ", 8)) // 63 chars, no keyword

	wins, source := ex.Extract(context.Background(), transcript)

	if source != voice.SourceKeyword {
		t.Errorf("source = %q, want keyword", source)
	}
	if len(wins) != 1 {
		t.Fatalf("got %d wins, want exactly 1", len(wins))
	}
	if wins[0].GoalAreaID != goalarea.WorkStrategic {
		t.Errorf("goal area = %q, want work_strategic", wins[0].GoalAreaID)
	}
	if wins[0].GoalAreaName != "Work: Strategic" {
		t.Errorf("goal area name = %q, want %q", wins[0].GoalAreaName, "Work: Strategic")
	}
	if wins[0].Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", wins[0].Confidence)
	}

	want := string([]rune(transcript)[:47]) + "..."
	if wins[0].Title != want {
		t.Errorf("title = %q, want %q", wins[0].Title, want)
	}
	if len([]rune(wins[0].Title)) != 50 {
		t.Errorf("truncated title is %d chars, want 50", len([]rune(wins[0].Title)))
	}
}

func TestKeywordFallbackNoTruncationAtFifty(t *testing.T) {
	ex := voice.NewExtractor(nil)
	transcript := strings.Repeat("z", 50)

	wins, _ := ex.Extract(context.Background(), transcript)
	if wins[0].Title != transcript {
		t.Errorf("title = %q, want unchanged 50-char transcript", wins[0].Title)
	}
}

func TestModelExtraction(t *testing.T) {
	gen := &fakeGenerator{reply: `Here are the wins:
{"wins": [
  {"title": "Peloton ride", "goalAreaId": "physical_health", "goalAreaName": "Physical Health", "confidence": 0.9},
  {"title": "Wrote newsletter draft", "goalAreaId": "content_newsletter", "goalAreaName": "Content: Newsletter", "confidence": 0.85}
]}`}
	ex := voice.NewExtractor(gen)

	wins, source := ex.Extract(context.Background(), "rode the peloton and drafted the newsletter")

	if source != voice.SourceModel {
		t.Errorf("source = %q, want model", source)
	}
	if len(wins) != 2 {
		t.Fatalf("got %d wins, want 2", len(wins))
	}
	if wins[1].GoalAreaID != goalarea.ContentNewsletter {
		t.Errorf("second win area = %q, want content_newsletter", wins[1].GoalAreaID)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestModelZeroWinsIsValid(t *testing.T) {
	gen := &fakeGenerator{reply: `{"wins": []}`}
	ex := voice.NewExtractor(gen)

	wins, source := ex.Extract(context.Background(), "nothing much happened today")

	if source != voice.SourceModel {
		t.Errorf("source = %q, want model (empty wins is a valid model result)", source)
	}
	if len(wins) != 0 {
		t.Errorf("got %d wins, want 0", len(wins))
	}
}

func TestModelNoJSONFallsBack(t *testing.T) {
	gen := &fakeGenerator{reply: "I could not find any structured wins, sorry."}
	ex := voice.NewExtractor(gen)

	wins, source := ex.Extract(context.Background(), "went for a run")

	if source != voice.SourceKeyword {
		t.Errorf("source = %q, want keyword fallback", source)
	}
	if len(wins) != 1 || wins[0].GoalAreaID != goalarea.PhysicalHealth {
		t.Errorf("fallback wins = %+v, want one physical_health win", wins)
	}
}

func TestModelMalformedJSONFallsBack(t *testing.T) {
	gen := &fakeGenerator{reply: `{"wins": [broken}`}
	ex := voice.NewExtractor(gen)

	wins, source := ex.Extract(context.Background(), "went for a run")

	if source != voice.SourceKeyword {
		t.Errorf("source = %q, want keyword fallback", source)
	}
	if len(wins) != 1 {
		t.Errorf("got %d wins, want exactly 1 from fallback", len(wins))
	}
}

func TestModelErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider unavailable")}
	ex := voice.NewExtractor(gen)

	wins, source := ex.Extract(context.Background(), "went for a run")

	if source != voice.SourceKeyword {
		t.Errorf("source = %q, want keyword fallback", source)
	}
	if len(wins) != 1 || wins[0].Confidence != 0.7 {
		t.Errorf("fallback wins = %+v, want one keyword win at 0.7", wins)
	}
}
