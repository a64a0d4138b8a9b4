package detector

import (
	"fmt"

	"github.com/pable/go-lol-coach/internal/model"
)

// visionBand is the expected number of map-control actions per window for a
// support player.
type visionBand struct{ poor, good float64 }

var visionBenchmarks = map[model.Phase]visionBand{
	model.PhaseEarly: {poor: 3, good: 6},
	model.PhaseMid:   {poor: 4, good: 8},
	model.PhaseLate:  {poor: 5, good: 9},
}

type visionWindow struct {
	actions  int
	controls int
}

// Vision counts ward placements and clears per fixed window and flags
// windows under the role-scaled benchmark.
func Vision(in Input) Result[model.VisionStats] {
	var res Result[model.VisionStats]
	th := in.Thresholds
	target := in.Target.ParticipantID
	res.Stats.VisionScore = in.Target.VisionScore

	windowMin := th.VisionWindowMinutes
	if windowMin <= 0 {
		windowMin = 5
	}
	windowMs := int64(windowMin) * 60000
	durationMs := in.Match.DurationMillis()
	full := int(durationMs / windowMs)

	windows := make([]visionWindow, full)
	for _, e := range in.Match.Events() {
		var control bool
		switch {
		case e.Kind == model.EventWardPlaced && e.CreatorID == target && e.WardType != model.WardUndefined:
			res.Stats.WardsPlaced++
			control = e.WardType == model.WardControl
			if control {
				res.Stats.ControlWards++
			}
		case e.Kind == model.EventWardKill && e.KillerID == target:
			res.Stats.WardsKilled++
		default:
			continue
		}
		i := int(e.Timestamp / windowMs)
		if i >= full {
			continue
		}
		windows[i].actions++
		if control {
			windows[i].controls++
		}
	}

	scale := 1.0
	if in.Role != model.RoleSupport {
		scale = th.NonSupportVisionScale
	}

	for i, w := range windows {
		start := i * windowMin
		end := start + windowMin
		phase := model.PhaseAtMinute(float64(start))
		expected := visionBenchmarks[phase].poor * scale
		ts := int64(end) * 60000
		state := &model.VisionState{
			WindowStartMinute: start,
			WindowEndMinute:   end,
			Actions:           w.actions,
			ControlWards:      w.controls,
			Expected:          expected,
		}
		res.Stats.Windows++

		if start >= th.VisionStartMinute && float64(w.actions) < expected {
			res.Stats.WindowsBelowPoor++
			sev := model.SeverityMedium
			if w.actions == 0 {
				sev = model.SeverityHigh
			}
			res.Mistakes = append(res.Mistakes, model.FlaggedMistake{
				Type:         model.MistakeLowVision,
				Severity:     sev,
				Timestamp:    ts,
				Title:        fmt.Sprintf("Low vision %d-%d min", start, end),
				Description:  fmt.Sprintf("You placed or cleared %d wards between %d:00 and %d:00; at least %.1f is expected.", w.actions, start, end, expected),
				Suggestion:   "Use your trinket on cooldown and clear enemy wards around the next objective.",
				CoachingNote: "Vision wins objectives before they start. Ward where the next fight will be, not where the last one was.",
				Context:      model.MistakeContext{Phase: phase, Vision: state},
			})
		}

		if phase != model.PhaseEarly && w.controls == 0 {
			sev := model.SeverityLow
			if in.Role == model.RoleSupport {
				sev = model.SeverityMedium
			}
			res.Mistakes = append(res.Mistakes, model.FlaggedMistake{
				Type:         model.MistakeNoControlWard,
				Severity:     sev,
				Timestamp:    ts,
				Title:        fmt.Sprintf("No control ward %d-%d min", start, end),
				Description:  fmt.Sprintf("You did not place a control ward between %d:00 and %d:00.", start, end),
				Suggestion:   "Keep a control ward in your inventory and place it at river entrances or objective pits.",
				CoachingNote: "A control ward costs 75 gold and denies enemy vision for as long as it survives.",
				Context:      model.MistakeContext{Phase: phase, Vision: state},
			})
		}
	}

	if minutes := in.Match.DurationMinutes(); minutes > 0 {
		res.Stats.PerMinute = round2(float64(res.Stats.Actions()) / minutes)
	}
	return res
}
