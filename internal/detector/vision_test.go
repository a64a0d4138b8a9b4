package detector

import (
	"testing"

	"github.com/pable/go-lol-coach/internal/matchtest"
	"github.com/pable/go-lol-coach/internal/model"
)

func visionMatch() *model.Match {
	m := matchtest.New(30)
	at := func(mm, ss int) int64 { return int64(mm)*matchtest.Minute + int64(ss)*1000 }

	matchtest.Ward(m, at(11, 0), blueMid, model.WardYellowTrinket)
	matchtest.Ward(m, at(13, 30), blueMid, model.WardYellowTrinket)
	matchtest.Ward(m, at(21, 0), blueMid, model.WardControl)
	matchtest.AddEvent(m, model.Event{Kind: model.EventWardKill, Timestamp: at(23, 0), KillerID: blueMid, WardType: model.WardSight})
	matchtest.Ward(m, at(26, 0), blueMid, model.WardSight)
	matchtest.Ward(m, at(27, 0), blueMid, model.WardUndefined)
	matchtest.Ward(m, at(16, 0), 4, model.WardControl)
	return m
}

func TestVisionWindows(t *testing.T) {
	res := Vision(newInput(t, visionMatch(), blueMid, model.RoleMid, true))

	want := []struct {
		typ model.MistakeType
		sev model.Severity
		end int
	}{
		{model.MistakeLowVision, model.SeverityHigh, 20},
		{model.MistakeNoControlWard, model.SeverityLow, 20},
		{model.MistakeLowVision, model.SeverityMedium, 30},
		{model.MistakeNoControlWard, model.SeverityLow, 30},
	}
	if len(res.Mistakes) != len(want) {
		t.Fatalf("got %d mistakes, want %d: %+v", len(res.Mistakes), len(want), res.Mistakes)
	}
	for i, w := range want {
		got := res.Mistakes[i]
		if got.Type != w.typ || got.Severity != w.sev || got.Timestamp != int64(w.end)*matchtest.Minute {
			t.Errorf("mistake %d = %s/%s at %d, want %s/%s at %d min",
				i, got.Type, got.Severity, got.Timestamp, w.typ, w.sev, w.end)
		}
		if got.Context.Vision == nil || got.Context.Vision.WindowEndMinute != w.end {
			t.Errorf("mistake %d vision context = %+v", i, got.Context.Vision)
		}
	}
	if exp := res.Mistakes[2].Context.Vision.Expected; exp != 2.5 {
		t.Errorf("late window expectation = %v, want 2.5", exp)
	}

	s := res.Stats
	if s.WardsPlaced != 4 || s.WardsKilled != 1 || s.ControlWards != 1 {
		t.Errorf("ward counts = %+v", s)
	}
	if s.Windows != 6 || s.WindowsBelowPoor != 2 {
		t.Errorf("windows = %d, below poor = %d", s.Windows, s.WindowsBelowPoor)
	}
}

func TestVisionSupportStricter(t *testing.T) {
	res := Vision(newInput(t, visionMatch(), blueMid, model.RoleSupport, false))
	var lowVision, controlSev int
	for _, m := range res.Mistakes {
		switch m.Type {
		case model.MistakeLowVision:
			lowVision++
		case model.MistakeNoControlWard:
			if m.Severity != model.SeverityMedium {
				t.Errorf("support missing control ward severity = %s", m.Severity)
			}
			controlSev++
		}
	}
	// Support expectations are doubled, so every checked window falls short.
	if lowVision != 4 {
		t.Errorf("low vision windows = %d, want 4", lowVision)
	}
	if controlSev != 2 {
		t.Errorf("no-control windows = %d, want 2", controlSev)
	}
}

func TestVisionIgnoresPartialWindow(t *testing.T) {
	m := matchtest.New(22)
	res := Vision(newInput(t, m, blueMid, model.RoleMid, false))
	if res.Stats.Windows != 4 {
		t.Errorf("windows = %d, want 4 full windows", res.Stats.Windows)
	}
	for _, ms := range res.Mistakes {
		if ms.Timestamp > 20*matchtest.Minute {
			t.Errorf("mistake from the partial window: %+v", ms)
		}
	}
}
