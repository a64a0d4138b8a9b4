package gamemap

import (
	"math"

	"github.com/pable/go-lol-coach/internal/model"
)

// Zone is a semantic map region.
type Zone string

const (
	ZoneDragonPit  Zone = "dragon_pit"
	ZoneBaronPit   Zone = "baron_pit"
	ZoneTopRiver   Zone = "top_river"
	ZoneBotRiver   Zone = "bot_river"
	ZoneBlueJungle Zone = "blue_jungle"
	ZoneRedJungle  Zone = "red_jungle"
	ZoneMidLane    Zone = "mid_lane"
	ZoneTopLane    Zone = "top_lane"
	ZoneBotLane    Zone = "bot_lane"
	ZoneBlueBase   Zone = "blue_base"
	ZoneRedBase    Zone = "red_base"
)

// Safety is how dangerous a zone is for the acting team.
type Safety string

const (
	SafetySafe    Safety = "safe"
	SafetyNeutral Safety = "neutral"
	SafetyDanger  Safety = "danger"
)

// Boundary constants of the decision list.
const (
	riverHalfWidth = 1400
	riverMinX      = 3000
	riverMaxX      = 12000
	laneEdge       = 2000
	midLaneWidth   = 1500
	baseCorner     = 5000
)

// zoneRule is one entry of the ordered decision list. The first rule whose
// match returns true decides the zone.
type zoneRule struct {
	name     string
	match    func(p model.Position) bool
	classify func(p model.Position, team model.Team) (Zone, Safety)
}

var zoneRules = []zoneRule{
	{
		name:  "river",
		match: inRiver,
		classify: func(p model.Position, _ model.Team) (Zone, Safety) {
			switch {
			case Distance(p, DragonPit) <= PitRadius:
				return ZoneDragonPit, SafetyDanger
			case Distance(p, BaronPit) <= PitRadius:
				return ZoneBaronPit, SafetyDanger
			case p.X < p.Y:
				return ZoneTopRiver, SafetyNeutral
			default:
				return ZoneBotRiver, SafetyNeutral
			}
		},
	},
	{
		name:  "blue_jungle",
		match: inBlueJungle,
		classify: func(_ model.Position, team model.Team) (Zone, Safety) {
			return ZoneBlueJungle, homeSafety(team, model.TeamBlue)
		},
	},
	{
		name:  "red_jungle",
		match: inRedJungle,
		classify: func(_ model.Position, team model.Team) (Zone, Safety) {
			return ZoneRedJungle, homeSafety(team, model.TeamRed)
		},
	},
	{
		name:  "mid_lane",
		match: func(p model.Position) bool { return math.Abs(p.X-p.Y) <= midLaneWidth },
		classify: func(model.Position, model.Team) (Zone, Safety) {
			return ZoneMidLane, SafetyNeutral
		},
	},
	{
		name:  "top_lane",
		match: func(p model.Position) bool { return p.X < laneEdge || p.Y > MapSize-laneEdge },
		classify: func(model.Position, model.Team) (Zone, Safety) {
			return ZoneTopLane, SafetyNeutral
		},
	},
	{
		name:  "bot_lane",
		match: func(p model.Position) bool { return p.Y < laneEdge || p.X > MapSize-laneEdge },
		classify: func(model.Position, model.Team) (Zone, Safety) {
			return ZoneBotLane, SafetyNeutral
		},
	},
	{
		name:  "blue_base",
		match: inBlueBase,
		classify: func(_ model.Position, team model.Team) (Zone, Safety) {
			return ZoneBlueBase, homeSafety(team, model.TeamBlue)
		},
	},
	{
		name:  "red_base",
		match: inRedBase,
		classify: func(_ model.Position, team model.Team) (Zone, Safety) {
			return ZoneRedBase, homeSafety(team, model.TeamRed)
		},
	},
}

// Classify maps a position and the acting team to a zone and its safety.
// Overlapping regions are resolved by rule order alone.
func Classify(p model.Position, team model.Team) (Zone, Safety) {
	for _, r := range zoneRules {
		if r.match(p) {
			return r.classify(p, team)
		}
	}
	return ZoneMidLane, SafetyNeutral
}

// matchingRule returns the name of the rule that decides p, or "" for the
// fallback.
func matchingRule(p model.Position) string {
	for _, r := range zoneRules {
		if r.match(p) {
			return r.name
		}
	}
	return ""
}

func inRiver(p model.Position) bool {
	return math.Abs(p.X+p.Y-MapSize) <= riverHalfWidth && p.X > riverMinX && p.X < riverMaxX
}

func inBlueJungle(p model.Position) bool {
	return p.X+p.Y < MapSize-riverHalfWidth &&
		p.X > laneEdge && p.Y > laneEdge &&
		math.Abs(p.X-p.Y) > midLaneWidth &&
		!inBlueBase(p)
}

func inRedJungle(p model.Position) bool {
	return p.X+p.Y > MapSize+riverHalfWidth &&
		p.X < MapSize-laneEdge && p.Y < MapSize-laneEdge &&
		math.Abs(p.X-p.Y) > midLaneWidth &&
		!inRedBase(p)
}

func inBlueBase(p model.Position) bool {
	return p.X < baseCorner && p.Y < baseCorner
}

func inRedBase(p model.Position) bool {
	return p.X > MapSize-baseCorner && p.Y > MapSize-baseCorner
}

func homeSafety(acting, home model.Team) Safety {
	if acting == home {
		return SafetySafe
	}
	return SafetyDanger
}
