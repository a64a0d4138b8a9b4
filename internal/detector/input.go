// Package detector implements the four independent mistake detectors:
// deaths, CS, vision and objectives. Each detector reads the whole match and
// returns its own mistakes and statistics; none of them share state.
package detector

import (
	"sort"

	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/model"
)

const defaultFrameInterval = 60000

// Input is everything a detector needs about the analyzed player.
type Input struct {
	Match  *model.Match
	Target *model.Participant
	// Opponent is the same-role enemy, nil when none could be resolved.
	Opponent   *model.Participant
	Role       model.Role
	Thresholds config.Thresholds
}

// Result is a detector outcome: its mistakes in emission order plus the
// detector-specific statistics.
type Result[S any] struct {
	Mistakes []model.FlaggedMistake
	Stats    S
}

// ResolveOpponent finds the enemy participant assigned to the same role.
// It returns nil for RoleUnknown or when no such participant exists.
func ResolveOpponent(m *model.Match, target *model.Participant, role model.Role) *model.Participant {
	if role == model.RoleUnknown {
		return nil
	}
	for i := range m.Participants {
		p := &m.Participants[i]
		if p.Team != target.Team && p.Team != model.TeamUnknown && p.Role == role {
			return p
		}
	}
	return nil
}

func frameInterval(m *model.Match) int64 {
	if m.FrameInterval > 0 {
		return m.FrameInterval
	}
	return defaultFrameInterval
}

// FrameAt returns the snapshot whose interval contains ts: the last frame
// taken at or before ts. ok is false when ts precedes the first frame or
// falls beyond the interval of the last one.
func FrameAt(m *model.Match, ts int64) (*model.Frame, bool) {
	frames := m.Frames
	i := sort.Search(len(frames), func(i int) bool { return frames[i].Timestamp > ts }) - 1
	if i < 0 {
		return nil, false
	}
	if i == len(frames)-1 && ts >= frames[i].Timestamp+frameInterval(m) {
		return nil, false
	}
	return &frames[i], true
}

// FrameAtMinute returns the snapshot taken during the given minute.
func FrameAtMinute(m *model.Match, minute int) (*model.Frame, bool) {
	lo := int64(minute) * 60000
	hi := lo + frameInterval(m)
	frames := m.Frames
	i := sort.Search(len(frames), func(i int) bool { return frames[i].Timestamp >= lo })
	if i == len(frames) || frames[i].Timestamp >= hi {
		return nil, false
	}
	return &frames[i], true
}

// deathWindow is a closed-open interval during which a participant was dead.
type deathWindow struct{ start, end int64 }

// deathWindows reconstructs when a participant was dead from the kills they
// suffered, using a phase-dependent respawn estimate.
func deathWindows(m *model.Match, participantID int, th config.Thresholds) []deathWindow {
	var out []deathWindow
	for _, f := range m.Frames {
		for _, e := range f.Events {
			if e.Kind != model.EventChampionKill || e.VictimID != participantID {
				continue
			}
			out = append(out, deathWindow{start: e.Timestamp, end: e.Timestamp + respawnDelay(e.Timestamp, th)})
		}
	}
	return out
}

func respawnDelay(ts int64, th config.Thresholds) int64 {
	switch model.PhaseAt(ts) {
	case model.PhaseEarly:
		return th.RespawnEarly.Milliseconds()
	case model.PhaseMid:
		return th.RespawnMid.Milliseconds()
	default:
		return th.RespawnLate.Milliseconds()
	}
}

func deadAt(windows []deathWindow, ts int64) bool {
	for _, w := range windows {
		if ts >= w.start && ts < w.end {
			return true
		}
	}
	return false
}

func intPtr(v int) *int { return &v }
