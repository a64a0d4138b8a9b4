package coaching

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/model"
)

var defaultLimits = LimitsFrom(config.DefaultThresholds())

func allScores(v int) model.ScoreBreakdown {
	return model.ScoreBreakdown{CS: v, Vision: v, Positioning: v, Objectives: v, Trading: v, Overall: v}
}

func mistakes(types ...model.MistakeType) []model.FlaggedMistake {
	out := make([]model.FlaggedMistake, len(types))
	for i, typ := range types {
		out[i] = model.FlaggedMistake{ID: fmt.Sprintf("M%03d", i+1), Type: typ, Severity: model.SeverityMedium}
	}
	return out
}

func ids(tips []model.CoachingTip) []string {
	out := make([]string, len(tips))
	for i, t := range tips {
		out[i] = t.ID
	}
	return out
}

func TestRecommendRoleFirstThenFrequency(t *testing.T) {
	ms := mistakes(
		model.MistakeTowerDive, model.MistakeIsolatedDeath, model.MistakeGanked,
		model.MistakeAvoidableDeath, model.MistakeLowCSRate,
	)
	tips := Recommend(ms, allScores(90), model.RoleMid, defaultLimits)

	want := []string{"role-mid-roam", "role-mid-river", "pos-respect-fog", "pos-tower-range", "pos-escape-path"}
	if got := ids(tips); !reflect.DeepEqual(got, want) {
		t.Fatalf("tips = %v, want %v", got, want)
	}
	for i, tip := range tips {
		if tip.Priority != i+1 {
			t.Errorf("tip %d priority = %d", i, tip.Priority)
		}
	}
	if tips[0].Role == nil || *tips[0].Role != model.RoleMid {
		t.Errorf("role tip should carry its role, got %v", tips[0].Role)
	}
	if tips[2].Role != nil {
		t.Error("category tip should not carry a role")
	}
	if got := tips[2].RelatedMistakeIDs; !reflect.DeepEqual(got, []string{"M001", "M002", "M003"}) {
		t.Errorf("related = %v, want the first three positioning mistakes", got)
	}
}

func TestRecommendFallsBackToWeakCategories(t *testing.T) {
	scores := allScores(90)
	scores.Vision = 40
	scores.Objectives = 55
	tips := Recommend(nil, scores, model.RoleUnknown, defaultLimits)

	want := []string{"vision-trinket", "vision-control", "vision-sweep", "vision-deep", "obj-timers"}
	if got := ids(tips); !reflect.DeepEqual(got, want) {
		t.Errorf("tips = %v, want %v", got, want)
	}
}

func TestRecommendDedupes(t *testing.T) {
	scores := allScores(90)
	scores.Vision = 30
	tips := Recommend(mistakes(model.MistakeLowVision), scores, model.RoleUnknown, defaultLimits)

	want := []string{"vision-trinket", "vision-control", "vision-sweep", "vision-deep"}
	if got := ids(tips); !reflect.DeepEqual(got, want) {
		t.Errorf("tips = %v, want %v", got, want)
	}
}

func TestRecommendCapsAndCategoryTies(t *testing.T) {
	// One mistake in every category: ties keep the fixed category order.
	ms := mistakes(
		model.MistakeBadTrade, model.MistakeLostObjective, model.MistakeTowerDive,
		model.MistakeLowVision, model.MistakeCSDeficit,
	)
	tips := Recommend(ms, allScores(20), model.RoleUnknown, defaultLimits)
	if len(tips) != defaultLimits.MaxTips {
		t.Fatalf("got %d tips, want %d", len(tips), defaultLimits.MaxTips)
	}
	want := []string{"cs-last-hit", "cs-side-waves", "cs-recall-timing", "cs-camps", "vision-trinket"}
	if got := ids(tips); !reflect.DeepEqual(got, want) {
		t.Errorf("tips = %v, want %v", got, want)
	}
}

func TestRecommendDrainsCategoryBank(t *testing.T) {
	// CS scores well, so the weak-score fallback adds nothing.
	scores := allScores(90)
	scores.CS = 94
	tips := Recommend(mistakes(model.MistakeLowCSRate, model.MistakeLowCSRate, model.MistakeLowCSRate), scores, model.RoleUnknown, defaultLimits)

	want := []string{"cs-last-hit", "cs-side-waves", "cs-recall-timing", "cs-camps"}
	if got := ids(tips); !reflect.DeepEqual(got, want) {
		t.Errorf("tips = %v, want %v", got, want)
	}
}

func TestRecommendEmpty(t *testing.T) {
	tips := Recommend(nil, allScores(100), model.RoleUnknown, defaultLimits)
	if tips == nil || len(tips) != 0 {
		t.Fatalf("expected an empty non-nil list, got %#v", tips)
	}
	b, err := json.Marshal(tips)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Errorf("json = %s", b)
	}
}

func TestTipBanksHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	check := func(tips []tip) {
		for _, tp := range tips {
			if seen[tp.id] {
				t.Errorf("duplicate tip id %s", tp.id)
			}
			seen[tp.id] = true
		}
	}
	for _, c := range model.Categories {
		if len(categoryTips[c]) < 3 {
			t.Errorf("category %s has %d tips", c, len(categoryTips[c]))
		}
		check(categoryTips[c])
	}
	for _, r := range model.Roles {
		if len(roleTips[r]) == 0 {
			t.Errorf("role %s has no tips", r)
		}
		check(roleTips[r])
	}
}
