package model

import (
	"fmt"
	"strings"
)

// Team represents which side a participant is on.
type Team int

const (
	TeamUnknown Team = 0
	TeamBlue    Team = 100
	TeamRed     Team = 200
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "BLUE"
	case TeamRed:
		return "RED"
	default:
		return "?"
	}
}

// Enemy returns the opposing team, or TeamUnknown for TeamUnknown.
func (t Team) Enemy() Team {
	switch t {
	case TeamBlue:
		return TeamRed
	case TeamRed:
		return TeamBlue
	default:
		return TeamUnknown
	}
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Team) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "BLUE", "100":
		*t = TeamBlue
	case "RED", "200":
		*t = TeamRed
	default:
		*t = TeamUnknown
	}
	return nil
}

// Role is the position a participant was assigned to.
type Role int

const (
	RoleUnknown Role = iota
	RoleTop
	RoleJungle
	RoleMid
	RoleBottom
	RoleSupport
)

// Roles lists every known role in display order.
var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleBottom, RoleSupport}

func (r Role) String() string {
	switch r {
	case RoleTop:
		return "top"
	case RoleJungle:
		return "jungle"
	case RoleMid:
		return "mid"
	case RoleBottom:
		return "bottom"
	case RoleSupport:
		return "support"
	default:
		return "unknown"
	}
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}

// ParseRole accepts both the provider's position names (TOP, JUNGLE, MIDDLE,
// BOTTOM, UTILITY) and the short names used on the command line. Anything
// unrecognised maps to RoleUnknown.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return RoleTop
	case "jungle", "jg", "jungler":
		return RoleJungle
	case "mid", "middle":
		return RoleMid
	case "bottom", "bot", "adc", "carry":
		return RoleBottom
	case "support", "utility", "sup", "supp":
		return RoleSupport
	default:
		return RoleUnknown
	}
}

// RoamHeavy reports whether the role spends most of the game away from a
// single farm lane, which makes lane-opponent CS comparisons meaningless.
func (r Role) RoamHeavy() bool {
	return r == RoleJungle || r == RoleSupport
}

// Position is a point on the map in game units.
type Position struct{ X, Y float64 }

func (p Position) String() string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X, p.Y)
}

// Participant is one player in the match with their end-of-game counters.
type Participant struct {
	ParticipantID int
	PUUID         string
	RiotID        string
	ChampionID    int
	ChampionName  string
	Team          Team
	Role          Role
	Win           bool

	Kills, Deaths, Assists int
	CS                     int
	VisionScore            int
	Gold                   int
	Damage                 int
}

// KDA returns (kills + assists) / max(1, deaths).
func (p *Participant) KDA() float64 {
	d := p.Deaths
	if d == 0 {
		d = 1
	}
	return float64(p.Kills+p.Assists) / float64(d)
}

// ParticipantFrame is one participant's state in a snapshot.
type ParticipantFrame struct {
	ParticipantID       int
	Position            Position
	TotalGold           int
	CurrentGold         int
	Level               int
	XP                  int
	MinionsKilled       int
	JungleMinionsKilled int
	WardsPlaced         int
	WardsKilled         int
}

// CS returns lane plus jungle minions killed.
func (f ParticipantFrame) CS() int {
	return f.MinionsKilled + f.JungleMinionsKilled
}

// EventKind tags a timeline event.
type EventKind string

const (
	EventChampionKill         EventKind = "CHAMPION_KILL"
	EventEliteMonsterKill     EventKind = "ELITE_MONSTER_KILL"
	EventBuildingKill         EventKind = "BUILDING_KILL"
	EventTurretPlateDestroyed EventKind = "TURRET_PLATE_DESTROYED"
	EventWardPlaced           EventKind = "WARD_PLACED"
	EventWardKill             EventKind = "WARD_KILL"
	EventItemPurchased        EventKind = "ITEM_PURCHASED"
	EventItemSold             EventKind = "ITEM_SOLD"
	EventItemDestroyed        EventKind = "ITEM_DESTROYED"
	EventLevelUp              EventKind = "LEVEL_UP"
	EventSkillLevelUp         EventKind = "SKILL_LEVEL_UP"
)

// Ward types as reported by the provider.
const (
	WardYellowTrinket = "YELLOW_TRINKET"
	WardSight         = "SIGHT_WARD"
	WardControl       = "CONTROL_WARD"
	WardBlueTrinket   = "BLUE_TRINKET"
	WardUndefined     = "UNDEFINED"
)

// Monster types and sub-types as reported by the provider.
const (
	MonsterDragon      = "DRAGON"
	MonsterBaron       = "BARON_NASHOR"
	MonsterRiftHerald  = "RIFTHERALD"
	MonsterHorde       = "HORDE"
	MonsterElderDragon = "ELDER_DRAGON"
)

// Event is a discrete timeline occurrence. Only the fields relevant to its
// Kind are set.
type Event struct {
	Kind      EventKind
	Timestamp int64 // ms since game start

	KillerID     int
	VictimID     int
	AssistingIDs []int
	Position     *Position

	MonsterType    string
	MonsterSubType string
	KillerTeam     Team

	WardType  string
	CreatorID int

	ParticipantID int
	ItemID        int

	BuildingType string
	LaneType     string
	TeamID       Team
}

// Frame is one fixed-interval snapshot with the events that happened in it.
type Frame struct {
	Timestamp    int64
	Participants map[int]ParticipantFrame
	Events       []Event
}

// Match is a complete decoded match: participants plus the ordered frames.
type Match struct {
	MatchID         string
	GameVersion     string
	DurationSeconds int
	FrameInterval   int64 // ms
	Participants    []Participant
	Frames          []Frame
	Hash            string
}

// Participant returns the participant with the given per-match id.
func (m *Match) Participant(id int) (*Participant, bool) {
	for i := range m.Participants {
		if m.Participants[i].ParticipantID == id {
			return &m.Participants[i], true
		}
	}
	return nil, false
}

// ParticipantByPUUID returns the participant whose PUUID matches exactly.
func (m *Match) ParticipantByPUUID(puuid string) (*Participant, bool) {
	for i := range m.Participants {
		if m.Participants[i].PUUID == puuid {
			return &m.Participants[i], true
		}
	}
	return nil, false
}

// DurationMillis returns the game length in milliseconds. When the provider
// did not report a duration, the last frame timestamp is used.
func (m *Match) DurationMillis() int64 {
	if m.DurationSeconds > 0 {
		return int64(m.DurationSeconds) * 1000
	}
	if n := len(m.Frames); n > 0 {
		return m.Frames[n-1].Timestamp
	}
	return 0
}

// DurationMinutes returns the game length in (fractional) minutes.
func (m *Match) DurationMinutes() float64 {
	return float64(m.DurationMillis()) / 60000
}

// Events returns every event of the match in frame order.
func (m *Match) Events() []Event {
	n := 0
	for _, f := range m.Frames {
		n += len(f.Events)
	}
	out := make([]Event, 0, n)
	for _, f := range m.Frames {
		out = append(out, f.Events...)
	}
	return out
}
