package detector

import (
	"fmt"

	"github.com/pable/go-lol-coach/internal/model"
)

// csBand is a CS-per-minute benchmark band.
type csBand struct{ good, average, poor float64 }

// csBenchmarks holds per-role, per-phase CS/min bands.
var csBenchmarks = map[model.Role]map[model.Phase]csBand{
	model.RoleTop: {
		model.PhaseEarly: {good: 7.5, average: 6.5, poor: 5.0},
		model.PhaseMid:   {good: 8.0, average: 7.0, poor: 5.5},
		model.PhaseLate:  {good: 8.5, average: 7.5, poor: 6.0},
	},
	model.RoleMid: {
		model.PhaseEarly: {good: 7.5, average: 6.5, poor: 5.0},
		model.PhaseMid:   {good: 8.0, average: 7.0, poor: 5.5},
		model.PhaseLate:  {good: 8.5, average: 7.5, poor: 6.0},
	},
	model.RoleBottom: {
		model.PhaseEarly: {good: 7.5, average: 6.5, poor: 5.0},
		model.PhaseMid:   {good: 8.5, average: 7.5, poor: 6.0},
		model.PhaseLate:  {good: 9.0, average: 8.0, poor: 6.5},
	},
	model.RoleJungle: {
		model.PhaseEarly: {good: 5.5, average: 4.5, poor: 3.5},
		model.PhaseMid:   {good: 6.0, average: 5.0, poor: 4.0},
		model.PhaseLate:  {good: 6.5, average: 5.5, poor: 4.5},
	},
	model.RoleSupport: {
		model.PhaseEarly: {good: 1.5, average: 1.0, poor: 0},
		model.PhaseMid:   {good: 2.0, average: 1.2, poor: 0},
		model.PhaseLate:  {good: 2.5, average: 1.5, poor: 0},
	},
	model.RoleUnknown: {
		model.PhaseEarly: {good: 7.0, average: 6.0, poor: 4.5},
		model.PhaseMid:   {good: 7.5, average: 6.5, poor: 5.0},
		model.PhaseLate:  {good: 8.0, average: 7.0, poor: 5.5},
	},
}

// CSBenchmark returns the CS/min band for a role and phase.
func CSBenchmark(role model.Role, phase model.Phase) (good, average, poor float64) {
	b := csBenchmarks[role][phase]
	return b.good, b.average, b.poor
}

// csFold carries the deficit debounce from one checkpoint to the next.
type csFold struct {
	lastFlaggedDeficit int
}

// step decides whether a lane-opponent deficit should be flagged. A deficit
// is re-flagged only once it has grown by step since the last flag; falling
// back under the threshold resets the fold.
func (f csFold) step(deficit, threshold, step int) (csFold, bool) {
	if deficit <= threshold {
		return csFold{}, false
	}
	if deficit-f.lastFlaggedDeficit < step {
		return f, false
	}
	return csFold{lastFlaggedDeficit: deficit}, true
}

// CS compares the target's CS at fixed checkpoints against the lane opponent
// or, failing that, the role benchmark.
func CS(in Input) Result[model.CSStats] {
	var res Result[model.CSStats]
	th := in.Thresholds
	target := in.Target.ParticipantID

	// Roam-heavy roles are always judged against benchmarks.
	opp := in.Opponent
	if in.Role.RoamHeavy() {
		opp = nil
	}
	res.Stats.OpponentResolved = in.Opponent != nil

	every := th.CSCheckpointMinutes
	if every <= 0 {
		every = 5
	}
	durationMin := in.Match.DurationMinutes()

	var fold csFold
	for minute := every; minute <= th.CSLastCheckpoint; minute += every {
		if float64(minute) > durationMin {
			break
		}
		frame, ok := FrameAtMinute(in.Match, minute)
		if !ok {
			continue
		}
		mine, ok := frame.Participants[target]
		if !ok {
			continue
		}
		cs := mine.CS()
		rate := float64(cs) / float64(minute)
		phase := model.PhaseAtMinute(float64(minute))

		res.Stats.Checkpoints++
		res.Stats.LastMinute = minute
		res.Stats.LastCS = cs
		if minute == 10 {
			res.Stats.CSAt10 = intPtr(cs)
		}

		var oppCS *int
		if in.Opponent != nil {
			if theirs, ok := frame.Participants[in.Opponent.ParticipantID]; ok {
				oppCS = intPtr(theirs.CS())
				if minute == 10 {
					res.Stats.DiffAt10 = intPtr(cs - *oppCS)
				}
			}
		}

		state := &model.CSState{Minute: minute, Player: cs, PerMinute: round2(rate)}
		ts := frame.Timestamp

		if opp != nil && oppCS != nil {
			deficit := *oppCS - cs
			var flag bool
			fold, flag = fold.step(deficit, th.CSDeficit, th.CSDeficitStep)
			if flag {
				state.Opponent = oppCS
				state.Deficit = deficit
				res.Mistakes = append(res.Mistakes, csDeficitMistake(ts, phase, state))
				continue
			}
		}

		_, _, poor := CSBenchmark(in.Role, phase)
		if rate < poor {
			state.Opponent = oppCS
			state.Benchmark = poor
			state.Deficit = int(poor*float64(minute)+0.5) - cs
			res.Mistakes = append(res.Mistakes, lowCSRateMistake(ts, phase, state, rate, poor))
		}
	}

	if res.Stats.LastMinute > 0 {
		res.Stats.PerMinute = round2(float64(res.Stats.LastCS) / float64(res.Stats.LastMinute))
	}
	return res
}

func csDeficitMistake(ts int64, phase model.Phase, s *model.CSState) model.FlaggedMistake {
	sev := model.SeverityLow
	switch {
	case s.Deficit >= 50:
		sev = model.SeverityHigh
	case s.Deficit >= 30:
		sev = model.SeverityMedium
	}
	return model.FlaggedMistake{
		Type:         model.MistakeCSDeficit,
		Severity:     sev,
		Timestamp:    ts,
		Title:        fmt.Sprintf("%d CS behind at %d minutes", s.Deficit, s.Minute),
		Description:  fmt.Sprintf("You had %d CS against your lane opponent's %d at %d:00.", s.Player, *s.Opponent, s.Minute),
		Suggestion:   "Prioritise last hits over low-value trades, and catch side waves between objectives.",
		CoachingNote: "A wave is roughly 125 gold; falling 15 CS behind is close to a kill's worth of gold.",
		Context:      model.MistakeContext{Phase: phase, CS: s},
	}
}

func lowCSRateMistake(ts int64, phase model.Phase, s *model.CSState, rate, poor float64) model.FlaggedMistake {
	shortfall := 1 - rate/poor
	sev := model.SeverityLow
	switch {
	case shortfall >= 0.35:
		sev = model.SeverityHigh
	case shortfall >= 0.15:
		sev = model.SeverityMedium
	}
	return model.FlaggedMistake{
		Type:         model.MistakeLowCSRate,
		Severity:     sev,
		Timestamp:    ts,
		Title:        fmt.Sprintf("Low farm at %d minutes", s.Minute),
		Description:  fmt.Sprintf("%d CS at %d:00 is %.1f CS/min, under the %.1f expected for your role.", s.Player, s.Minute, rate, poor),
		Suggestion:   "Keep collecting waves and nearby camps whenever no objective or fight needs you.",
		CoachingNote: "Farm is the most reliable income; an idle minute without CS is gold you never get back.",
		Context:      model.MistakeContext{Phase: phase, CS: s},
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
