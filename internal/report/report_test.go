package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/pable/go-lol-coach/internal/model"
	"github.com/pable/go-lol-coach/internal/storage"
)

func init() {
	color.NoColor = true
}

func TestPrintAnalysis(t *testing.T) {
	role := model.RoleMid
	res := &model.AnalysisResult{
		MatchID:         "NA1_77",
		ChampionName:    "Ahri",
		Role:            model.RoleMid,
		Win:             true,
		DurationSeconds: 1805,
		Mistakes: []model.FlaggedMistake{{
			ID: "M001", Type: model.MistakeTowerDive, Severity: model.SeverityCritical,
			Timestamp: 1320000, Title: "Died under enemy tower",
			Context: model.MistakeContext{Phase: model.PhaseMid},
		}},
		Scores: model.ScoreBreakdown{CS: 92, Vision: 55, Positioning: 85, Objectives: 100, Trading: 70, Overall: 81},
		Tips: []model.CoachingTip{
			{ID: "role-mid-roam", Title: "Roam after shoving", Priority: 1, Role: &role},
			{ID: "pos-tower-range", Category: model.CategoryPositioning, Title: "Stay out of enemy tower range",
				Priority: 2, RelatedMistakeIDs: []string{"M001"}},
		},
	}

	var buf bytes.Buffer
	PrintAnalysis(&buf, res)
	out := buf.String()

	for _, want := range []string{"NA1_77", "30:05", "M001", "22:00", "CRITICAL", "tower_dive",
		"1. Roam after shoving (mid)", "2. Stay out of enemy tower range (positioning)", "see M001"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMistakesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintMistakes(&buf, nil)
	if !strings.Contains(buf.String(), "No mistakes flagged.") {
		t.Errorf("got %q", buf.String())
	}
}

func TestPrintTrend(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	trend := []storage.Summary{
		{ID: "aaaaaaaa-1", MatchID: "NA1_1", Champion: "Ahri", Scores: model.ScoreBreakdown{CS: 60, Overall: 50}, AnalyzedAt: at},
		{ID: "bbbbbbbb-2", MatchID: "NA1_2", Champion: "Ahri", Scores: model.ScoreBreakdown{CS: 80, Overall: 70}, AnalyzedAt: at},
	}
	counts := []storage.MistakeTypeCount{{Type: model.MistakeLowVision, Count: 3}}

	var buf bytes.Buffer
	PrintTrend(&buf, trend, counts)
	out := buf.String()
	for _, want := range []string{"NA1_1", "NA1_2", "70.0", "60.0", "low_vision", "vision"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	PrintTrend(&buf, nil, nil)
	if !strings.Contains(buf.String(), "No analyses stored") {
		t.Errorf("got %q", buf.String())
	}
}
