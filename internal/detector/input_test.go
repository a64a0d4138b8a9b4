package detector

import (
	"testing"

	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/matchtest"
	"github.com/pable/go-lol-coach/internal/model"
)

const blueMid = 3

func newInput(t *testing.T, m *model.Match, targetID int, role model.Role, withOpponent bool) Input {
	t.Helper()
	target, ok := m.Participant(targetID)
	if !ok {
		t.Fatalf("participant %d not in match", targetID)
	}
	in := Input{Match: m, Target: target, Role: role, Thresholds: config.DefaultThresholds()}
	if withOpponent {
		in.Opponent = ResolveOpponent(m, target, role)
	}
	return in
}

func TestResolveOpponent(t *testing.T) {
	m := matchtest.New(10)
	target, _ := m.Participant(blueMid)

	if opp := ResolveOpponent(m, target, model.RoleMid); opp == nil || opp.ParticipantID != 8 {
		t.Errorf("mid opponent = %+v, want participant 8", opp)
	}
	if opp := ResolveOpponent(m, target, model.RoleTop); opp == nil || opp.ParticipantID != 6 {
		t.Errorf("role override should pick the enemy top laner, got %+v", opp)
	}
	if opp := ResolveOpponent(m, target, model.RoleUnknown); opp != nil {
		t.Errorf("unknown role should have no opponent, got %+v", opp)
	}
}

func TestFrameAt(t *testing.T) {
	m := matchtest.New(10)
	cases := []struct {
		ts     int64
		want   int64
		wantOK bool
	}{
		{-1, 0, false},
		{0, 0, true},
		{90000, 60000, true},
		{10*matchtest.Minute + 59999, 10 * matchtest.Minute, true},
		{11 * matchtest.Minute, 0, false},
	}
	for _, tc := range cases {
		f, ok := FrameAt(m, tc.ts)
		if ok != tc.wantOK {
			t.Errorf("FrameAt(%d) ok = %v, want %v", tc.ts, ok, tc.wantOK)
			continue
		}
		if ok && f.Timestamp != tc.want {
			t.Errorf("FrameAt(%d) = frame %d, want %d", tc.ts, f.Timestamp, tc.want)
		}
	}
}

func TestFrameAtMinuteMissingFrame(t *testing.T) {
	m := matchtest.New(10)
	m.Frames = append(m.Frames[:4], m.Frames[5:]...)
	if _, ok := FrameAtMinute(m, 4); ok {
		t.Error("minute 4 was removed and should not resolve")
	}
	if f, ok := FrameAtMinute(m, 5); !ok || f.Timestamp != 5*matchtest.Minute {
		t.Errorf("FrameAtMinute(5) = %v, %v", f, ok)
	}
}

func TestDeadAt(t *testing.T) {
	m := matchtest.New(30)
	matchtest.Kill(m, 20*matchtest.Minute, 8, blueMid, model.Position{X: 7000, Y: 7000})
	windows := deathWindows(m, blueMid, config.DefaultThresholds())
	if len(windows) != 1 {
		t.Fatalf("windows = %v", windows)
	}
	// Mid-game respawn is 30s.
	if !deadAt(windows, 20*matchtest.Minute+29999) {
		t.Error("should still be dead before the respawn")
	}
	if deadAt(windows, 20*matchtest.Minute+30000) {
		t.Error("should be alive after the respawn")
	}
}
