package detector

import (
	"testing"

	"github.com/pable/go-lol-coach/internal/matchtest"
	"github.com/pable/go-lol-coach/internal/model"
)

func TestObjectives(t *testing.T) {
	m := matchtest.New(30)
	mn := matchtest.Minute

	// Voidgrubs at 6:00, credited by participant only: target at spawn.
	matchtest.Monster(m, 6*mn+10000, 7, model.TeamUnknown, model.MonsterHorde, "")
	// Herald at 9:00 with the target next to the pit.
	matchtest.SetPosition(m, 9, blueMid, model.Position{X: 5500, Y: 10000})
	matchtest.Monster(m, 9*mn+20000, 7, model.TeamRed, model.MonsterRiftHerald, "")
	// Dragon at 12:00 with the target at spawn.
	matchtest.Monster(m, 12*mn+30000, 7, model.TeamRed, model.MonsterDragon, "FIRE_DRAGON")
	// Own team dragon at 18:00.
	matchtest.Monster(m, 18*mn, 2, model.TeamBlue, model.MonsterDragon, "WATER_DRAGON")
	// Baron at 26:00 while the target is dead.
	matchtest.Kill(m, 25*mn+50000, 8, blueMid, model.Position{X: 5000, Y: 10000})
	matchtest.Monster(m, 26*mn+10000, 7, model.TeamRed, model.MonsterBaron, "")
	// Scuttle is not tracked.
	matchtest.Monster(m, 4*mn, 7, model.TeamRed, "SCUTTLE_CRAB", "")

	res := Objectives(newInput(t, m, blueMid, model.RoleMid, true))

	if len(res.Mistakes) != 2 {
		t.Fatalf("got %d mistakes, want 2: %+v", len(res.Mistakes), res.Mistakes)
	}
	grubs, dragon := res.Mistakes[0], res.Mistakes[1]
	if grubs.Type != model.MistakeLostObjective || grubs.Severity != model.SeverityLow ||
		grubs.Context.Objective.Objective != model.ObjectiveVoidgrubs {
		t.Errorf("first = %+v", grubs)
	}
	if dragon.Severity != model.SeverityHigh || dragon.Context.Objective.Objective != model.ObjectiveDragon {
		t.Errorf("second = %+v", dragon)
	}
	if !dragon.Context.Objective.Alive || dragon.Context.Objective.Distance <= 4000 {
		t.Errorf("dragon context = %+v", dragon.Context.Objective)
	}

	by := res.Stats.ByType
	if by[model.ObjectiveVoidgrubs].Lost != 1 {
		t.Errorf("voidgrubs = %+v", by[model.ObjectiveVoidgrubs])
	}
	if by[model.ObjectiveRiftHerald].Contested != 1 {
		t.Errorf("herald = %+v", by[model.ObjectiveRiftHerald])
	}
	if d := by[model.ObjectiveDragon]; d.Lost != 1 || d.Secured != 1 {
		t.Errorf("dragon = %+v", d)
	}
	if by[model.ObjectiveBaron].Dead != 1 {
		t.Errorf("baron = %+v", by[model.ObjectiveBaron])
	}
	if res.Stats.Lost() != 2 || res.Stats.Contested() != 1 {
		t.Errorf("lost = %d, contested = %d", res.Stats.Lost(), res.Stats.Contested())
	}
}

func TestElderLostIsCritical(t *testing.T) {
	m := matchtest.New(40)
	matchtest.Monster(m, 35*matchtest.Minute, 7, model.TeamRed, model.MonsterDragon, model.MonsterElderDragon)

	got := onlyMistake(t, Objectives(newInput(t, m, blueMid, model.RoleMid, true)).Mistakes)
	if got.Severity != model.SeverityCritical || got.Context.Phase != model.PhaseLate {
		t.Errorf("elder mistake = %s in %s", got.Severity, got.Context.Phase)
	}
}
