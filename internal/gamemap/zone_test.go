package gamemap

import (
	"testing"

	"github.com/pable/go-lol-coach/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		pos    model.Position
		team   model.Team
		zone   Zone
		safety Safety
	}{
		{"dragon pit", DragonPit, model.TeamBlue, ZoneDragonPit, SafetyDanger},
		{"baron pit", BaronPit, model.TeamRed, ZoneBaronPit, SafetyDanger},
		{"top river", model.Position{X: 3800, Y: 10800}, model.TeamBlue, ZoneTopRiver, SafetyNeutral},
		{"bot river", model.Position{X: 11000, Y: 3600}, model.TeamRed, ZoneBotRiver, SafetyNeutral},
		{"blue jungle home", model.Position{X: 3500, Y: 7000}, model.TeamBlue, ZoneBlueJungle, SafetySafe},
		{"blue jungle invaded", model.Position{X: 3500, Y: 7000}, model.TeamRed, ZoneBlueJungle, SafetyDanger},
		{"red jungle home", model.Position{X: 11000, Y: 8000}, model.TeamRed, ZoneRedJungle, SafetySafe},
		{"red jungle invaded", model.Position{X: 11000, Y: 8000}, model.TeamBlue, ZoneRedJungle, SafetyDanger},
		{"mid lane", model.Position{X: 6000, Y: 6500}, model.TeamBlue, ZoneMidLane, SafetyNeutral},
		{"top lane", model.Position{X: 1000, Y: 8000}, model.TeamRed, ZoneTopLane, SafetyNeutral},
		{"bot lane", model.Position{X: 9000, Y: 1000}, model.TeamBlue, ZoneBotLane, SafetyNeutral},
		{"blue base home", model.Position{X: 4500, Y: 2200}, model.TeamBlue, ZoneBlueBase, SafetySafe},
		{"red base enemy", model.Position{X: 10370, Y: 12670}, model.TeamBlue, ZoneRedBase, SafetyDanger},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			zone, safety := Classify(tc.pos, tc.team)
			if zone != tc.zone || safety != tc.safety {
				t.Errorf("Classify(%v, %v) = (%s, %s), want (%s, %s)",
					tc.pos, tc.team, zone, safety, tc.zone, tc.safety)
			}
		})
	}
}

// The blue fountain lies on the mid diagonal, so the mid-lane rule claims it
// before the base rule is reached.
func TestClassifyOverlapFollowsRuleOrder(t *testing.T) {
	p := model.Position{X: 500, Y: 500}
	if !inBlueBase(p) {
		t.Fatal("fountain should satisfy the base test")
	}
	if got := matchingRule(p); got != "mid_lane" {
		t.Errorf("matchingRule = %q, want mid_lane", got)
	}
	if zone, _ := Classify(p, model.TeamBlue); zone != ZoneMidLane {
		t.Errorf("zone = %s, want %s", zone, ZoneMidLane)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	p := model.Position{X: 7200, Y: 7600}
	z1, s1 := Classify(p, model.TeamRed)
	for i := 0; i < 10; i++ {
		z, s := Classify(p, model.TeamRed)
		if z != z1 || s != s1 {
			t.Fatalf("classification changed between calls: %s/%s vs %s/%s", z, s, z1, s1)
		}
	}
}

func TestNearEnemyStructure(t *testing.T) {
	redMidOuter := Structures[model.TeamRed][1]
	near := model.Position{X: redMidOuter.X + 300, Y: redMidOuter.Y}
	if !NearEnemyStructure(near, model.TeamBlue, 900) {
		t.Error("blue player next to red mid outer should be near an enemy structure")
	}
	if NearEnemyStructure(near, model.TeamRed, 900) {
		t.Error("red player next to their own turret is not near an enemy structure")
	}
	if NearEnemyStructure(model.Position{X: 7435, Y: 7435}, model.TeamBlue, 900) {
		t.Error("map centre should not be in tower range")
	}
}

func TestPitFor(t *testing.T) {
	if PitFor(model.ObjectiveElderDragon) != DragonPit {
		t.Error("elder spawns in the dragon pit")
	}
	if PitFor(model.ObjectiveRiftHerald) != BaronPit || PitFor(model.ObjectiveVoidgrubs) != BaronPit {
		t.Error("herald and voidgrubs spawn in the baron pit")
	}
}
