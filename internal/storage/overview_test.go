package storage

import (
	"testing"
	"time"

	"github.com/pable/go-lol-coach/internal/model"
)

func TestOverviewEmpty(t *testing.T) {
	db := openMemDB(t)
	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.Analyses != 0 || !ov.Earliest.IsZero() {
		t.Errorf("expected empty overview, got %+v", ov)
	}
}

func TestOverviewAndRoleAverages(t *testing.T) {
	db := openMemDB(t)
	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	top := sampleResult("NA1_2", "p2", 40)
	top.Role = model.RoleTop
	top.Win = false
	for i, res := range []*model.AnalysisResult{
		sampleResult("NA1_1", "p1", 80),
		sampleResult("NA1_2", "p1", 60),
		top,
	} {
		if _, err := db.InsertAnalysis("h"+res.MatchID+res.PUUID, "", res, base.Add(time.Duration(i)*24*time.Hour)); err != nil {
			t.Fatal(err)
		}
	}

	ov, err := db.GetOverview()
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.Analyses != 3 || ov.Matches != 2 || ov.Players != 2 {
		t.Errorf("counts = %+v", ov)
	}
	if !ov.Earliest.Equal(base) || !ov.Latest.Equal(base.Add(48*time.Hour)) {
		t.Errorf("range = %v..%v", ov.Earliest, ov.Latest)
	}

	roles, err := db.GetRoleAverages()
	if err != nil {
		t.Fatalf("GetRoleAverages: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %+v", roles)
	}
	if roles[0].Role != model.RoleTop || roles[1].Role != model.RoleMid {
		t.Errorf("roles out of display order: %v, %v", roles[0].Role, roles[1].Role)
	}
	mid := roles[1]
	if mid.Analyses != 2 || mid.Scores[5] != 70 || mid.WinRate != 1 {
		t.Errorf("mid = %+v", mid)
	}
	if roles[0].WinRate != 0 {
		t.Errorf("top win rate = %v", roles[0].WinRate)
	}
}

func TestMistakeCountsAllPlayers(t *testing.T) {
	db := openMemDB(t)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	db.InsertAnalysis("h1", "", sampleResult("NA1_1", "p1", 50), at)
	db.InsertAnalysis("h2", "", sampleResult("NA1_2", "p2", 50), at)

	counts, err := db.MistakeCounts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 || counts[0].Count != 2 {
		t.Errorf("expected both players counted, got %+v", counts)
	}
}

func TestSeenMatches(t *testing.T) {
	db := openMemDB(t)
	if _, err := db.InsertAnalysis("h1", "", sampleResult("NA1_1", "p1", 50), time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := db.InsertAnalysis("h2", "", sampleResult("NA1_2", "p2", 50), time.Now()); err != nil {
		t.Fatal(err)
	}

	seen, err := db.SeenMatches("p1")
	if err != nil {
		t.Fatalf("SeenMatches: %v", err)
	}
	for _, tc := range []struct {
		id   string
		want bool
	}{
		{"NA1_1", true},
		{"NA1_2", false}, // stored, but for another player
		{"NA1_3", false},
	} {
		got, err := seen.Contains(tc.id)
		if err != nil {
			t.Fatalf("Contains(%s): %v", tc.id, err)
		}
		if got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.id, got, tc.want)
		}
	}

	// Add only feeds the filter; the database stays the source of truth.
	seen.Add("NA1_3")
	if got, _ := seen.Contains("NA1_3"); got {
		t.Error("unstored match reported as analyzed")
	}
}
