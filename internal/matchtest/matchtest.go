// Package matchtest builds synthetic matches for tests.
package matchtest

import (
	"fmt"

	"github.com/pable/go-lol-coach/internal/model"
)

// Minute is one minute of game time in milliseconds.
const Minute int64 = 60000

// Spawn positions every participant starts each frame at.
var (
	BlueSpawn = model.Position{X: 2000, Y: 2000}
	RedSpawn  = model.Position{X: 12800, Y: 12800}
)

// New returns a match of the given length with ten participants and one
// frame per minute, frames 0 through minutes inclusive. Participants 1-5
// play blue and 6-10 red, each side in model.Roles order; participant i has
// PUUID "p<i>".
func New(minutes int) *model.Match {
	m := &model.Match{
		MatchID:         "TEST_1",
		GameVersion:     "14.3.1",
		DurationSeconds: minutes * 60,
		FrameInterval:   Minute,
		Hash:            "testhash",
	}
	for i := 1; i <= 10; i++ {
		team := model.TeamBlue
		if i > 5 {
			team = model.TeamRed
		}
		m.Participants = append(m.Participants, model.Participant{
			ParticipantID: i,
			PUUID:         fmt.Sprintf("p%d", i),
			RiotID:        fmt.Sprintf("Player%d#TST", i),
			ChampionID:    i,
			ChampionName:  fmt.Sprintf("Champ%d", i),
			Team:          team,
			Role:          model.Roles[(i-1)%5],
		})
	}
	for minute := 0; minute <= minutes; minute++ {
		f := model.Frame{
			Timestamp:    int64(minute) * Minute,
			Participants: make(map[int]model.ParticipantFrame, 10),
		}
		for _, p := range m.Participants {
			pos := BlueSpawn
			if p.Team == model.TeamRed {
				pos = RedSpawn
			}
			f.Participants[p.ParticipantID] = model.ParticipantFrame{
				ParticipantID: p.ParticipantID,
				Position:      pos,
				Level:         1 + minute/2,
				TotalGold:     500 + 400*minute,
			}
		}
		m.Frames = append(m.Frames, f)
	}
	return m
}

// Update applies fn to participant id's snapshot in the frame of the given
// minute.
func Update(m *model.Match, minute, id int, fn func(*model.ParticipantFrame)) {
	pf := m.Frames[minute].Participants[id]
	fn(&pf)
	m.Frames[minute].Participants[id] = pf
}

// SetPosition moves a participant in the frame of the given minute.
func SetPosition(m *model.Match, minute, id int, pos model.Position) {
	Update(m, minute, id, func(pf *model.ParticipantFrame) { pf.Position = pos })
}

// SetCS sets a participant's lane minions for each frame from cs(minute).
func SetCS(m *model.Match, id int, cs func(minute int) int) {
	for minute := range m.Frames {
		Update(m, minute, id, func(pf *model.ParticipantFrame) { pf.MinionsKilled = cs(minute) })
	}
}

// AddEvent appends e to the frame whose minute contains its timestamp.
func AddEvent(m *model.Match, e model.Event) {
	i := int(e.Timestamp / Minute)
	m.Frames[i].Events = append(m.Frames[i].Events, e)
}

// Kill records a champion kill at ts.
func Kill(m *model.Match, ts int64, killer, victim int, pos model.Position, assists ...int) {
	p := pos
	AddEvent(m, model.Event{
		Kind:         model.EventChampionKill,
		Timestamp:    ts,
		KillerID:     killer,
		VictimID:     victim,
		AssistingIDs: assists,
		Position:     &p,
	})
}

// Ward records a ward placement by creator at ts.
func Ward(m *model.Match, ts int64, creator int, wardType string) {
	AddEvent(m, model.Event{
		Kind:      model.EventWardPlaced,
		Timestamp: ts,
		CreatorID: creator,
		WardType:  wardType,
	})
}

// Monster records an elite monster kill credited to team at ts.
func Monster(m *model.Match, ts int64, killer int, team model.Team, monsterType, subType string) {
	AddEvent(m, model.Event{
		Kind:           model.EventEliteMonsterKill,
		Timestamp:      ts,
		KillerID:       killer,
		KillerTeam:     team,
		MonsterType:    monsterType,
		MonsterSubType: subType,
	})
}
