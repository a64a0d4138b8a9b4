package model

// ObjectiveType is an epic objective tier.
type ObjectiveType string

const (
	ObjectiveDragon      ObjectiveType = "dragon"
	ObjectiveElderDragon ObjectiveType = "elder_dragon"
	ObjectiveBaron       ObjectiveType = "baron"
	ObjectiveRiftHerald  ObjectiveType = "rift_herald"
	ObjectiveVoidgrubs   ObjectiveType = "voidgrubs"
)

// ObjectiveTypes lists objective tiers in display order.
var ObjectiveTypes = []ObjectiveType{
	ObjectiveDragon, ObjectiveElderDragon, ObjectiveBaron, ObjectiveRiftHerald, ObjectiveVoidgrubs,
}

// ObjectiveTypeOf maps an elite-monster event to its objective tier.
// ok is false for monsters that are not tracked.
func ObjectiveTypeOf(monsterType, subType string) (ObjectiveType, bool) {
	switch monsterType {
	case MonsterDragon:
		if subType == MonsterElderDragon {
			return ObjectiveElderDragon, true
		}
		return ObjectiveDragon, true
	case MonsterBaron:
		return ObjectiveBaron, true
	case MonsterRiftHerald:
		return ObjectiveRiftHerald, true
	case MonsterHorde:
		return ObjectiveVoidgrubs, true
	}
	return "", false
}

// DeathStats aggregates the death detector.
type DeathStats struct {
	Total        int `json:"total"`
	Solo         int `json:"solo"`
	TowerDive    int `json:"tower_dive"`
	Isolated     int `json:"isolated"`
	Ganked       int `json:"ganked"`
	BadTrade     int `json:"bad_trade"`
	LevelDeficit int `json:"level_deficit"`
	Avoidable    int `json:"avoidable"`
}

// CSStats aggregates the CS detector.
type CSStats struct {
	Checkpoints      int     `json:"checkpoints"`
	LastMinute       int     `json:"last_minute"`
	LastCS           int     `json:"last_cs"`
	PerMinute        float64 `json:"per_minute"`
	CSAt10           *int    `json:"cs_at_10,omitempty"`
	DiffAt10         *int    `json:"diff_at_10,omitempty"`
	OpponentResolved bool    `json:"opponent_resolved"`
}

// VisionStats aggregates the vision detector.
type VisionStats struct {
	WardsPlaced      int     `json:"wards_placed"`
	WardsKilled      int     `json:"wards_killed"`
	ControlWards     int     `json:"control_wards"`
	Windows          int     `json:"windows"`
	WindowsBelowPoor int     `json:"windows_below_poor"`
	PerMinute        float64 `json:"per_minute"`
	VisionScore      int     `json:"vision_score"`
}

// Actions returns placed plus destroyed wards.
func (s VisionStats) Actions() int {
	return s.WardsPlaced + s.WardsKilled
}

// ObjectiveTally counts what happened around one objective type.
type ObjectiveTally struct {
	Lost      int `json:"lost"`
	Contested int `json:"contested"`
	Dead      int `json:"dead"`
	Secured   int `json:"secured"`
}

// ObjectiveStats aggregates the objective detector.
type ObjectiveStats struct {
	ByType map[ObjectiveType]ObjectiveTally `json:"by_type"`
}

// Lost returns the number of enemy objectives taken while the player was
// alive and out of range.
func (s ObjectiveStats) Lost() int {
	n := 0
	for _, t := range s.ByType {
		n += t.Lost
	}
	return n
}

// Contested returns the number of enemy objectives the player was near.
func (s ObjectiveStats) Contested() int {
	n := 0
	for _, t := range s.ByType {
		n += t.Contested
	}
	return n
}

// Stats bundles every detector's aggregate statistics.
type Stats struct {
	Deaths     DeathStats     `json:"deaths"`
	CS         CSStats        `json:"cs"`
	Vision     VisionStats    `json:"vision"`
	Objectives ObjectiveStats `json:"objectives"`
}

// Values flattens the stats into a name → value map.
func (s Stats) Values() map[string]float64 {
	v := map[string]float64{
		"deaths.total":         float64(s.Deaths.Total),
		"deaths.solo":          float64(s.Deaths.Solo),
		"deaths.tower_dive":    float64(s.Deaths.TowerDive),
		"deaths.isolated":      float64(s.Deaths.Isolated),
		"deaths.ganked":        float64(s.Deaths.Ganked),
		"deaths.bad_trade":     float64(s.Deaths.BadTrade),
		"deaths.level_deficit": float64(s.Deaths.LevelDeficit),
		"deaths.avoidable":     float64(s.Deaths.Avoidable),
		"cs.checkpoints":       float64(s.CS.Checkpoints),
		"cs.last_minute":       float64(s.CS.LastMinute),
		"cs.last_cs":           float64(s.CS.LastCS),
		"cs.per_minute":        s.CS.PerMinute,
		"vision.wards_placed":  float64(s.Vision.WardsPlaced),
		"vision.wards_killed":  float64(s.Vision.WardsKilled),
		"vision.control_wards": float64(s.Vision.ControlWards),
		"vision.per_minute":    s.Vision.PerMinute,
		"vision.score":         float64(s.Vision.VisionScore),
	}
	if s.CS.CSAt10 != nil {
		v["cs.at_10"] = float64(*s.CS.CSAt10)
	}
	if s.CS.DiffAt10 != nil {
		v["cs.diff_at_10"] = float64(*s.CS.DiffAt10)
	}
	for _, t := range ObjectiveTypes {
		tally := s.Objectives.ByType[t]
		v["objectives."+string(t)+".lost"] = float64(tally.Lost)
		v["objectives."+string(t)+".contested"] = float64(tally.Contested)
		v["objectives."+string(t)+".secured"] = float64(tally.Secured)
	}
	return v
}
