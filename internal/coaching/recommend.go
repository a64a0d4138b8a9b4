// Package coaching selects the prioritized coaching tips for one analysis.
package coaching

import (
	"sort"

	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/model"
)

// Limits caps how many tips are produced and from where.
type Limits struct {
	MaxTips        int
	MaxRoleTips    int
	MaxRelated     int
	WeakScoreBelow int
}

// LimitsFrom extracts the recommendation limits from the thresholds.
func LimitsFrom(th config.Thresholds) Limits {
	return Limits{
		MaxTips:        th.MaxTips,
		MaxRoleTips:    th.MaxRoleTips,
		MaxRelated:     th.MaxRelated,
		WeakScoreBelow: th.WeakScoreBelow,
	}
}

type builder struct {
	limits  Limits
	tips    []model.CoachingTip
	used    map[string]bool
	related map[model.ScoreCategory][]string
}

func (b *builder) full() bool {
	return len(b.tips) >= b.limits.MaxTips
}

// add appends t unless it was already used or the list is full.
func (b *builder) add(c model.ScoreCategory, t tip, role *model.Role) bool {
	if b.full() || b.used[t.id] {
		return false
	}
	b.used[t.id] = true
	b.tips = append(b.tips, model.CoachingTip{
		ID:                t.id,
		Category:          c,
		Title:             t.title,
		Description:       t.description,
		RelatedMistakeIDs: b.related[c],
		Role:              role,
	})
	return true
}

// Recommend picks at most MaxTips tips: role tips first, then tips for the
// most frequent mistake categories, then tips for weak score categories.
// Priorities are renumbered 1..n in final order.
func Recommend(mistakes []model.FlaggedMistake, scores model.ScoreBreakdown, role model.Role, limits Limits) []model.CoachingTip {
	b := &builder{
		limits:  limits,
		tips:    []model.CoachingTip{},
		used:    make(map[string]bool),
		related: make(map[model.ScoreCategory][]string),
	}

	counts := make(map[model.ScoreCategory]int)
	for _, m := range mistakes {
		c := m.Type.Category()
		counts[c]++
		if len(b.related[c]) < limits.MaxRelated && m.ID != "" {
			b.related[c] = append(b.related[c], m.ID)
		}
	}

	if role != model.RoleUnknown {
		r := role
		n := 0
		for _, t := range roleTips[role] {
			if n >= limits.MaxRoleTips {
				break
			}
			if b.add(roleCategory(role), t, &r) {
				n++
			}
		}
	}

	for _, c := range byFrequency(counts) {
		for _, t := range categoryTips[c] {
			if b.full() {
				break
			}
			b.add(c, t, nil)
		}
	}

	for _, c := range weakCategories(scores, limits.WeakScoreBelow) {
		for _, t := range categoryTips[c] {
			if b.full() {
				break
			}
			b.add(c, t, nil)
		}
	}

	for i := range b.tips {
		b.tips[i].Priority = i + 1
	}
	return b.tips
}

// byFrequency returns categories that have mistakes, most frequent first,
// ties broken by the fixed category order.
func byFrequency(counts map[model.ScoreCategory]int) []model.ScoreCategory {
	var out []model.ScoreCategory
	for _, c := range model.Categories {
		if counts[c] > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return counts[out[i]] > counts[out[j]] })
	return out
}

// weakCategories returns categories scoring below the cutoff, lowest first.
func weakCategories(scores model.ScoreBreakdown, below int) []model.ScoreCategory {
	var out []model.ScoreCategory
	for _, c := range model.Categories {
		if scores.Get(c) < below {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return scores.Get(out[i]) < scores.Get(out[j]) })
	return out
}

// roleCategory is the score category a role's tips are filed under.
func roleCategory(r model.Role) model.ScoreCategory {
	switch r {
	case model.RoleSupport:
		return model.CategoryVision
	case model.RoleJungle:
		return model.CategoryObjectives
	case model.RoleBottom:
		return model.CategoryPositioning
	default:
		return model.CategoryCS
	}
}
