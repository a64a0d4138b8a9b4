package model

import (
	"fmt"
	"strings"
)

// Severity is a 4-level ordinal; higher is worse.
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Escalate returns the next severity up, saturating at critical.
func (s Severity) Escalate() Severity {
	if s >= SeverityCritical {
		return SeverityCritical
	}
	return s + 1
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "low":
		*s = SeverityLow
	case "medium":
		*s = SeverityMedium
	case "high":
		*s = SeverityHigh
	case "critical":
		*s = SeverityCritical
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// MistakeType is the category tag attached to a flagged mistake.
type MistakeType string

const (
	MistakeTowerDive      MistakeType = "tower_dive"
	MistakeIsolatedDeath  MistakeType = "isolated_death"
	MistakeGanked         MistakeType = "ganked"
	MistakeBadTrade       MistakeType = "bad_trade"
	MistakeLevelDeficit   MistakeType = "level_deficit"
	MistakeAvoidableDeath MistakeType = "avoidable_death"
	MistakeCSDeficit      MistakeType = "cs_deficit"
	MistakeLowCSRate      MistakeType = "low_cs_rate"
	MistakeLowVision      MistakeType = "low_vision"
	MistakeNoControlWard  MistakeType = "no_control_ward"
	MistakeLostObjective  MistakeType = "lost_objective"
)

// ScoreCategory is one of the five scored performance areas.
type ScoreCategory string

const (
	CategoryCS          ScoreCategory = "cs"
	CategoryVision      ScoreCategory = "vision"
	CategoryPositioning ScoreCategory = "positioning"
	CategoryObjectives  ScoreCategory = "objectives"
	CategoryTrading     ScoreCategory = "trading"
)

// Categories lists the score categories in their fixed tie-break order.
var Categories = []ScoreCategory{
	CategoryCS, CategoryVision, CategoryPositioning, CategoryObjectives, CategoryTrading,
}

var mistakeCategories = map[MistakeType]ScoreCategory{
	MistakeTowerDive:      CategoryPositioning,
	MistakeIsolatedDeath:  CategoryPositioning,
	MistakeGanked:         CategoryPositioning,
	MistakeAvoidableDeath: CategoryPositioning,
	MistakeBadTrade:       CategoryTrading,
	MistakeLevelDeficit:   CategoryTrading,
	MistakeCSDeficit:      CategoryCS,
	MistakeLowCSRate:      CategoryCS,
	MistakeLowVision:      CategoryVision,
	MistakeNoControlWard:  CategoryVision,
	MistakeLostObjective:  CategoryObjectives,
}

// Category maps a mistake type to the score category it counts against.
// Unmapped types fall into positioning.
func (t MistakeType) Category() ScoreCategory {
	if c, ok := mistakeCategories[t]; ok {
		return c
	}
	return CategoryPositioning
}

// ZoneState is where a mistake happened and how safe that was.
type ZoneState struct {
	Zone     string   `json:"zone"`
	Safety   string   `json:"safety"`
	Position Position `json:"position"`
	// NearestAllyDistance is nil when no living ally position was known.
	NearestAllyDistance *float64 `json:"nearest_ally_distance,omitempty"`
	UnderEnemyTower     bool     `json:"under_enemy_tower"`
}

// GoldState compares the player's gold with the reference opponent.
type GoldState struct {
	Player   int    `json:"player"`
	Opponent int    `json:"opponent"`
	Diff     int    `json:"diff"`
	Versus   string `json:"versus"` // "lane_opponent" or "killer"
}

// LevelState compares the player's level with the reference opponent.
type LevelState struct {
	Player   int `json:"player"`
	Opponent int `json:"opponent"`
	Diff     int `json:"diff"`
}

// VisionState describes a map-control window.
type VisionState struct {
	WindowStartMinute int     `json:"window_start_minute"`
	WindowEndMinute   int     `json:"window_end_minute"`
	Actions           int     `json:"actions"`
	ControlWards      int     `json:"control_wards"`
	Expected          float64 `json:"expected"`
}

// CSState describes a CS checkpoint.
type CSState struct {
	Minute    int     `json:"minute"`
	Player    int     `json:"player"`
	Opponent  *int    `json:"opponent,omitempty"`
	Deficit   int     `json:"deficit"`
	PerMinute float64 `json:"per_minute"`
	Benchmark float64 `json:"benchmark,omitempty"`
}

// ObjectiveState describes an objective the enemy team took.
type ObjectiveState struct {
	Objective ObjectiveType `json:"objective"`
	Distance  float64       `json:"distance"`
	Alive     bool          `json:"alive"`
}

// MistakeContext is the structured payload explaining a mistake.
type MistakeContext struct {
	Phase     Phase           `json:"phase"`
	Assists   int             `json:"assists,omitempty"`
	Zone      *ZoneState      `json:"zone,omitempty"`
	Gold      *GoldState      `json:"gold,omitempty"`
	Level     *LevelState     `json:"level,omitempty"`
	Vision    *VisionState    `json:"vision,omitempty"`
	CS        *CSState        `json:"cs,omitempty"`
	Objective *ObjectiveState `json:"objective,omitempty"`
}

// FlaggedMistake is one classified mistake.
type FlaggedMistake struct {
	ID           string         `json:"id"`
	Type         MistakeType    `json:"type"`
	Severity     Severity       `json:"severity"`
	Timestamp    int64          `json:"timestamp"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Suggestion   string         `json:"suggestion"`
	CoachingNote string         `json:"coaching_note"`
	Context      MistakeContext `json:"context"`
}

// Clock formats the mistake timestamp as mm:ss.
func (m *FlaggedMistake) Clock() string {
	return FormatClock(m.Timestamp)
}

// FormatClock formats a millisecond timestamp as mm:ss.
func FormatClock(ms int64) string {
	s := ms / 1000
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// ScoreBreakdown holds the five category scores and the overall score.
type ScoreBreakdown struct {
	CS          int `json:"cs"`
	Vision      int `json:"vision"`
	Positioning int `json:"positioning"`
	Objectives  int `json:"objectives"`
	Trading     int `json:"trading"`
	Overall     int `json:"overall"`
}

// Get returns the score for a category.
func (b ScoreBreakdown) Get(c ScoreCategory) int {
	switch c {
	case CategoryCS:
		return b.CS
	case CategoryVision:
		return b.Vision
	case CategoryPositioning:
		return b.Positioning
	case CategoryObjectives:
		return b.Objectives
	case CategoryTrading:
		return b.Trading
	default:
		return 0
	}
}

// CoachingTip is one prioritized recommendation.
type CoachingTip struct {
	ID                string        `json:"id"`
	Category          ScoreCategory `json:"category"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Priority          int           `json:"priority"`
	RelatedMistakeIDs []string      `json:"related_mistake_ids,omitempty"`
	Role              *Role         `json:"role,omitempty"`
}

// AnalysisResult is the terminal output of one analysis.
type AnalysisResult struct {
	MatchID         string           `json:"match_id"`
	PUUID           string           `json:"puuid"`
	ParticipantID   int              `json:"participant_id"`
	ChampionID      int              `json:"champion_id"`
	ChampionName    string           `json:"champion_name"`
	Role            Role             `json:"role"`
	Win             bool             `json:"win"`
	DurationSeconds int              `json:"duration_seconds"`
	Mistakes        []FlaggedMistake `json:"mistakes"`
	Scores          ScoreBreakdown   `json:"scores"`
	Tips            []CoachingTip    `json:"tips"`
	Stats           Stats            `json:"stats"`
}

// SeverityCounts tallies mistakes by severity.
func (r *AnalysisResult) SeverityCounts() map[Severity]int {
	out := make(map[Severity]int, 4)
	for _, m := range r.Mistakes {
		out[m.Severity]++
	}
	return out
}
