package detector

import (
	"fmt"

	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/gamemap"
	"github.com/pable/go-lol-coach/internal/model"
)

// deathFacts is the context gathered around one death of the target.
type deathFacts struct {
	ts         int64
	phase      model.Phase
	pos        model.Position
	zone       gamemap.Zone
	safety     gamemap.Safety
	allies     allyProximity
	underTower bool
	assists    int
	gold       *model.GoldState
	level      *model.LevelState
}

// deathRule is one step of the death classification cascade.
type deathRule struct {
	kind     model.MistakeType
	severity model.Severity
	match    func(f deathFacts, th config.Thresholds) bool
	explain  func(f deathFacts) (title, description, suggestion, note string)
}

// deathRules is evaluated in order; the first match classifies the death.
var deathRules = []deathRule{
	{
		kind:     model.MistakeTowerDive,
		severity: model.SeverityCritical,
		match:    func(f deathFacts, _ config.Thresholds) bool { return f.underTower },
		explain: func(f deathFacts) (string, string, string, string) {
			return "Died under an enemy tower",
				fmt.Sprintf("You died inside enemy tower range in %s with %d enemies credited.", f.zone, f.assists+1),
				"Only dive when the tower is taking minion aggro or the kill is guaranteed before the second shot.",
				"Count tower shots before committing: every shot ramps up, and a failed dive hands over shutdown gold."
		},
	},
	{
		kind:     model.MistakeIsolatedDeath,
		severity: model.SeverityHigh,
		match: func(f deathFacts, th config.Thresholds) bool {
			if !f.allies.known {
				return false
			}
			return !f.allies.alive || f.allies.distance > th.IsolationDistance
		},
		explain: func(f deathFacts) (string, string, string, string) {
			desc := fmt.Sprintf("You were caught in %s with no living ally nearby.", f.zone)
			if f.allies.alive {
				desc = fmt.Sprintf("You were caught in %s with the nearest ally %.0f units away.", f.zone, f.allies.distance)
			}
			return "Caught out alone", desc,
				"Move with your team when enemies are missing from the map, or ward ahead before pushing alone.",
				"Before walking into fog, check how many enemies are visible and how quickly an ally could reach you."
		},
	},
	{
		kind:     model.MistakeGanked,
		severity: model.SeverityCritical,
		match:    func(f deathFacts, th config.Thresholds) bool { return f.assists >= th.GankAssists },
		explain: func(f deathFacts) (string, string, string, string) {
			return "Died to a multi-person gank",
				fmt.Sprintf("%d enemies collapsed on you in %s.", f.assists+1, f.zone),
				"Track the enemy jungler and respect missing laners; back off when your lane is pushed without vision.",
				"Ganks succeed against over-extended positions. Keep an escape path and a ward covering the approach."
		},
	},
	{
		kind:     model.MistakeBadTrade,
		severity: model.SeverityMedium,
		match: func(f deathFacts, th config.Thresholds) bool {
			return f.gold != nil && f.gold.Diff < -th.GoldDeficit
		},
		explain: func(f deathFacts) (string, string, string, string) {
			return "Fought while behind in gold",
				fmt.Sprintf("You took a fight %d gold behind your %s.", -f.gold.Diff, versusLabel(f.gold.Versus)),
				"Play for farm and safe trades until item spikes line up instead of forcing fights from behind.",
				"Compare completed items before trading; a full item gap rarely loses to mechanics alone."
		},
	},
	{
		kind:     model.MistakeLevelDeficit,
		severity: model.SeverityMedium,
		match: func(f deathFacts, th config.Thresholds) bool {
			return f.level != nil && f.level.Diff < -th.LevelDeficit
		},
		explain: func(f deathFacts) (string, string, string, string) {
			return "Fought while down levels",
				fmt.Sprintf("You were level %d against level %d.", f.level.Player, f.level.Opponent),
				"Avoid extended trades when the opponent has more levels; catch up on experience first.",
				"Level spikes (2, 6, 11, 16) swing fights. Track when your opponent will hit theirs."
		},
	},
	{
		kind:     model.MistakeAvoidableDeath,
		severity: model.SeverityLow,
		match:    func(deathFacts, config.Thresholds) bool { return true },
		explain: func(f deathFacts) (string, string, string, string) {
			return "Avoidable death",
				fmt.Sprintf("You died in %s (%s).", f.zone, f.safety),
				"Review what information you had before the fight and whether you could have disengaged.",
				"Every death gives the enemy gold and map time; ask whether the play was worth that cost."
		},
	},
}

func versusLabel(v string) string {
	if v == "killer" {
		return "killer"
	}
	return "lane opponent"
}

// Deaths classifies every death of the target.
func Deaths(in Input) Result[model.DeathStats] {
	var res Result[model.DeathStats]
	th := in.Thresholds
	targetID := in.Target.ParticipantID

	allyDeaths := make(map[int][]deathWindow)
	for _, p := range in.Match.Participants {
		if p.Team == in.Target.Team && p.ParticipantID != targetID {
			allyDeaths[p.ParticipantID] = deathWindows(in.Match, p.ParticipantID, th)
		}
	}

	for _, e := range in.Match.Events() {
		if e.Kind != model.EventChampionKill || e.VictimID != targetID {
			continue
		}
		facts, ok := gatherDeathFacts(in, e, allyDeaths)
		if !ok {
			continue
		}

		res.Stats.Total++
		if facts.assists == 0 {
			res.Stats.Solo++
		}

		for _, rule := range deathRules {
			if !rule.match(facts, th) {
				continue
			}
			sev := rule.severity
			if facts.phase == model.PhaseLate {
				sev = sev.Escalate()
			}
			title, desc, suggestion, note := rule.explain(facts)
			res.Mistakes = append(res.Mistakes, model.FlaggedMistake{
				Type:         rule.kind,
				Severity:     sev,
				Timestamp:    e.Timestamp,
				Title:        title,
				Description:  desc,
				Suggestion:   suggestion,
				CoachingNote: note,
				Context: model.MistakeContext{
					Phase:   facts.phase,
					Assists: facts.assists,
					Zone: &model.ZoneState{
						Zone:                string(facts.zone),
						Safety:              string(facts.safety),
						Position:            facts.pos,
						NearestAllyDistance: facts.allies.distancePtr(),
						UnderEnemyTower:     facts.underTower,
					},
					Gold:  facts.gold,
					Level: facts.level,
				},
			})
			countDeath(&res.Stats, rule.kind)
			break
		}
	}
	return res
}

func countDeath(s *model.DeathStats, kind model.MistakeType) {
	switch kind {
	case model.MistakeTowerDive:
		s.TowerDive++
	case model.MistakeIsolatedDeath:
		s.Isolated++
	case model.MistakeGanked:
		s.Ganked++
	case model.MistakeBadTrade:
		s.BadTrade++
	case model.MistakeLevelDeficit:
		s.LevelDeficit++
	case model.MistakeAvoidableDeath:
		s.Avoidable++
	}
}

// gatherDeathFacts builds the context for one kill event. ok is false when
// the event has no position or no snapshot covers its timestamp.
func gatherDeathFacts(in Input, e model.Event, allyDeaths map[int][]deathWindow) (deathFacts, bool) {
	if e.Position == nil {
		return deathFacts{}, false
	}
	frame, ok := FrameAt(in.Match, e.Timestamp)
	if !ok {
		return deathFacts{}, false
	}

	pos := *e.Position
	team := in.Target.Team
	zone, safety := gamemap.Classify(pos, team)
	f := deathFacts{
		ts:         e.Timestamp,
		phase:      model.PhaseAt(e.Timestamp),
		pos:        pos,
		zone:       zone,
		safety:     safety,
		allies:     nearestLivingAlly(in, frame, pos, e.Timestamp, allyDeaths),
		underTower: gamemap.NearEnemyStructure(pos, team, in.Thresholds.TowerDangerRadius),
		assists:    len(e.AssistingIDs),
	}

	mine, ok := frame.Participants[in.Target.ParticipantID]
	if !ok {
		return f, true
	}
	refID, versus := 0, ""
	switch {
	case in.Opponent != nil:
		refID, versus = in.Opponent.ParticipantID, "lane_opponent"
	case e.KillerID > 0:
		refID, versus = e.KillerID, "killer"
	}
	if ref, ok := frame.Participants[refID]; ok && refID > 0 {
		f.gold = &model.GoldState{
			Player:   mine.TotalGold,
			Opponent: ref.TotalGold,
			Diff:     mine.TotalGold - ref.TotalGold,
			Versus:   versus,
		}
		f.level = &model.LevelState{
			Player:   mine.Level,
			Opponent: ref.Level,
			Diff:     mine.Level - ref.Level,
		}
	}
	return f, true
}

// allyProximity is what the snapshot says about the target's teammates at
// the moment of a death. known is false when no teammate appears in it.
type allyProximity struct {
	known    bool
	alive    bool
	distance float64
}

func (a allyProximity) distancePtr() *float64 {
	if !a.alive {
		return nil
	}
	d := a.distance
	return &d
}

// nearestLivingAlly measures the distance from pos to the closest teammate
// alive at ts.
func nearestLivingAlly(in Input, frame *model.Frame, pos model.Position, ts int64, allyDeaths map[int][]deathWindow) allyProximity {
	var out allyProximity
	for _, p := range in.Match.Participants {
		if p.Team != in.Target.Team || p.ParticipantID == in.Target.ParticipantID {
			continue
		}
		pf, ok := frame.Participants[p.ParticipantID]
		if !ok {
			continue
		}
		out.known = true
		if deadAt(allyDeaths[p.ParticipantID], ts) {
			continue
		}
		d := gamemap.Distance(pos, pf.Position)
		if !out.alive || d < out.distance {
			out.alive, out.distance = true, d
		}
	}
	return out
}
