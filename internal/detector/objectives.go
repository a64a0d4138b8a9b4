package detector

import (
	"fmt"
	"strings"

	"github.com/pable/go-lol-coach/internal/gamemap"
	"github.com/pable/go-lol-coach/internal/model"
)

var objectiveSeverity = map[model.ObjectiveType]model.Severity{
	model.ObjectiveElderDragon: model.SeverityCritical,
	model.ObjectiveBaron:       model.SeverityCritical,
	model.ObjectiveDragon:      model.SeverityHigh,
	model.ObjectiveRiftHerald:  model.SeverityMedium,
	model.ObjectiveVoidgrubs:   model.SeverityLow,
}

var objectiveNames = map[model.ObjectiveType]string{
	model.ObjectiveElderDragon: "Elder Dragon",
	model.ObjectiveBaron:       "Baron Nashor",
	model.ObjectiveDragon:      "Dragon",
	model.ObjectiveRiftHerald:  "Rift Herald",
	model.ObjectiveVoidgrubs:   "Voidgrubs",
}

// Objectives checks where the target was whenever the enemy team took an
// epic objective.
func Objectives(in Input) Result[model.ObjectiveStats] {
	res := Result[model.ObjectiveStats]{
		Stats: model.ObjectiveStats{ByType: make(map[model.ObjectiveType]model.ObjectiveTally)},
	}
	th := in.Thresholds
	target := in.Target
	dead := deathWindows(in.Match, target.ParticipantID, th)

	for _, e := range in.Match.Events() {
		if e.Kind != model.EventEliteMonsterKill {
			continue
		}
		obj, ok := model.ObjectiveTypeOf(e.MonsterType, e.MonsterSubType)
		if !ok {
			continue
		}
		team := e.KillerTeam
		if team == model.TeamUnknown {
			if killer, ok := in.Match.Participant(e.KillerID); ok {
				team = killer.Team
			}
		}
		if team == model.TeamUnknown {
			continue
		}

		tally := res.Stats.ByType[obj]
		if team == target.Team {
			tally.Secured++
			res.Stats.ByType[obj] = tally
			continue
		}

		frame, ok := FrameAt(in.Match, e.Timestamp)
		if !ok {
			continue
		}
		pf, ok := frame.Participants[target.ParticipantID]
		if !ok {
			continue
		}
		if deadAt(dead, e.Timestamp) {
			tally.Dead++
			res.Stats.ByType[obj] = tally
			continue
		}

		dist := gamemap.Distance(pf.Position, gamemap.PitFor(obj))
		if dist <= th.ObjectiveProximity {
			tally.Contested++
			res.Stats.ByType[obj] = tally
			continue
		}
		tally.Lost++
		res.Stats.ByType[obj] = tally
		res.Mistakes = append(res.Mistakes, lostObjectiveMistake(e.Timestamp, obj, dist, th.ObjectiveProximity))
	}
	return res
}

func lostObjectiveMistake(ts int64, obj model.ObjectiveType, dist, proximity float64) model.FlaggedMistake {
	name := objectiveNames[obj]
	where := "too far away to contest it"
	if dist > 2*proximity {
		where = "on the other side of the map"
	}
	return model.FlaggedMistake{
		Type:      model.MistakeLostObjective,
		Severity:  objectiveSeverity[obj],
		Timestamp: ts,
		Title:     fmt.Sprintf("Enemy took %s without you", name),
		Description: fmt.Sprintf("The enemy team secured %s while you were alive and %.0f units from the pit, %s.",
			name, dist, where),
		Suggestion:   fmt.Sprintf("Track the %s timer and start moving toward the pit about 45 seconds before it spawns.", strings.ToLower(name)),
		CoachingNote: "Objectives are decided by who arrives first with vision. Trade side-lane pressure for presence when the timer is up.",
		Context: model.MistakeContext{
			Phase: model.PhaseAt(ts),
			Objective: &model.ObjectiveState{
				Objective: obj,
				Distance:  dist,
				Alive:     true,
			},
		},
	}
}
