// Package scoring turns detector output into the five category scores and
// the overall score.
package scoring

import (
	"math"

	"github.com/pable/go-lol-coach/internal/model"
)

// Severity penalties subtracted from a category per mistake.
var penalties = map[model.Severity]float64{
	model.SeverityCritical: 15,
	model.SeverityHigh:     10,
	model.SeverityMedium:   5,
	model.SeverityLow:      2,
}

// Overall score weights; they sum to 1.
var weights = map[model.ScoreCategory]float64{
	model.CategoryCS:          0.20,
	model.CategoryVision:      0.15,
	model.CategoryPositioning: 0.30,
	model.CategoryObjectives:  0.15,
	model.CategoryTrading:     0.20,
}

const (
	maxScore     = 100
	adjustment   = 10
	winBonus     = 5
	goodCSRate   = 8.0
	goodVision   = 1.0
	lowDeathRate = 0.1
	goodKDA      = 3.0
	poorKDA      = 1.0
	contestedMin = 2
)

// Input is what the calculator needs from one analysis.
type Input struct {
	Mistakes        []model.FlaggedMistake
	Stats           model.Stats
	Role            model.Role
	Participant     *model.Participant
	DurationMinutes float64
}

// Calculate scores one analysis.
func Calculate(in Input) model.ScoreBreakdown {
	scores := make(map[model.ScoreCategory]float64, len(model.Categories))
	for _, c := range model.Categories {
		scores[c] = maxScore
	}

	for _, m := range in.Mistakes {
		scores[m.Type.Category()] -= penalties[m.Severity]
	}

	for c, delta := range adjustments(in) {
		scores[c] += delta
	}

	overall := 0.0
	for _, c := range model.Categories {
		scores[c] = clamp(scores[c])
		overall += scores[c] * weights[c]
	}
	if in.Participant != nil && in.Participant.Win {
		overall += winBonus
	}

	return model.ScoreBreakdown{
		CS:          round(scores[model.CategoryCS]),
		Vision:      round(scores[model.CategoryVision]),
		Positioning: round(scores[model.CategoryPositioning]),
		Objectives:  round(scores[model.CategoryObjectives]),
		Trading:     round(scores[model.CategoryTrading]),
		Overall:     round(clamp(overall)),
	}
}

// adjustments returns the bonus/penalty per category derived from the raw
// statistics.
func adjustments(in Input) map[model.ScoreCategory]float64 {
	adj := make(map[model.ScoreCategory]float64)
	s := in.Stats

	if in.Role != model.RoleSupport && s.CS.Checkpoints > 0 && s.CS.PerMinute >= goodCSRate {
		adj[model.CategoryCS] += adjustment
	}

	if in.DurationMinutes > 0 {
		switch {
		case s.Vision.Actions() == 0:
			adj[model.CategoryVision] -= adjustment
		case s.Vision.PerMinute >= goodVision:
			adj[model.CategoryVision] += adjustment
		}

		if float64(s.Deaths.Total)/in.DurationMinutes < lowDeathRate {
			adj[model.CategoryPositioning] += adjustment
		}
	}

	if s.Objectives.Lost() == 0 && s.Objectives.Contested() >= contestedMin {
		adj[model.CategoryObjectives] += adjustment
	}

	if p := in.Participant; p != nil {
		switch kda := p.KDA(); {
		case kda >= goodKDA:
			adj[model.CategoryTrading] += adjustment
		case kda < poorKDA:
			adj[model.CategoryTrading] -= adjustment
		}
	}
	return adj
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}

func round(v float64) int {
	return int(math.Round(v))
}
