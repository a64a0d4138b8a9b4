// Package gamemap holds the fixed Summoner's Rift geometry: zone
// classification, objective pits and structure coordinates.
package gamemap

import (
	"math"

	"github.com/pable/go-lol-coach/internal/model"
)

// MapSize is the length of one side of the playable square in game units.
const MapSize = 14870

// Objective pit centres.
var (
	DragonPit = model.Position{X: 9866, Y: 4414}
	BaronPit  = model.Position{X: 5007, Y: 10471}
)

// PitRadius is how far from a pit centre still counts as "in the pit".
const PitRadius = 1000

// Structures lists, per team, the five structure coordinates that team
// defends: three outer turrets, the mid inner turret and the nexus turrets.
var Structures = map[model.Team][]model.Position{
	model.TeamBlue: {
		{X: 981, Y: 10441},  // top outer
		{X: 5846, Y: 6396},  // mid outer
		{X: 10504, Y: 1029}, // bot outer
		{X: 5048, Y: 4812},  // mid inner
		{X: 1748, Y: 2270},  // nexus turrets
	},
	model.TeamRed: {
		{X: 4318, Y: 13875}, // top outer
		{X: 8955, Y: 8510},  // mid outer
		{X: 13866, Y: 4505}, // bot outer
		{X: 9767, Y: 10113}, // mid inner
		{X: 13052, Y: 12612},
	},
}

// Distance is the euclidean distance between two points.
func Distance(a, b model.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NearEnemyStructure reports whether pos lies within radius of any structure
// defended by the enemy of team.
func NearEnemyStructure(pos model.Position, team model.Team, radius float64) bool {
	for _, s := range Structures[team.Enemy()] {
		if Distance(pos, s) <= radius {
			return true
		}
	}
	return false
}

// PitFor returns the pit where an objective spawns.
func PitFor(obj model.ObjectiveType) model.Position {
	switch obj {
	case model.ObjectiveDragon, model.ObjectiveElderDragon:
		return DragonPit
	default:
		return BaronPit
	}
}
