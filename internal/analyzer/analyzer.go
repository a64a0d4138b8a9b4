// Package analyzer runs the full analysis of one player in one match:
// detectors, scoring and recommendations.
package analyzer

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pable/go-lol-coach/internal/coaching"
	"github.com/pable/go-lol-coach/internal/config"
	"github.com/pable/go-lol-coach/internal/detector"
	"github.com/pable/go-lol-coach/internal/model"
	"github.com/pable/go-lol-coach/internal/scoring"
)

// ErrParticipantNotFound is returned when the requested PUUID did not play
// in the match.
var ErrParticipantNotFound = errors.New("participant not found")

// Request selects the player to analyze.
type Request struct {
	PUUID string
	// Role overrides the participant's assigned role when not RoleUnknown.
	Role model.Role
}

// Analyzer is safe for concurrent use; it holds no per-analysis state.
type Analyzer struct {
	th     config.Thresholds
	logger *slog.Logger
}

// New returns an Analyzer using the given thresholds. A nil logger discards
// output.
func New(th config.Thresholds, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{th: th, logger: logger}
}

// Analyze produces the complete result for one player. The result depends
// only on the match, the request and the thresholds.
func (a *Analyzer) Analyze(match *model.Match, req Request) (*model.AnalysisResult, error) {
	target, ok := match.ParticipantByPUUID(req.PUUID)
	if !ok {
		return nil, fmt.Errorf("match %s: puuid %s: %w", match.MatchID, req.PUUID, ErrParticipantNotFound)
	}

	role := req.Role
	if role == model.RoleUnknown {
		role = target.Role
	}
	opponent := detector.ResolveOpponent(match, target, role)
	log := a.logger.With("match", match.MatchID, "participant", target.ParticipantID, "role", role.String())
	if opponent == nil {
		log.Debug("no lane opponent, using benchmarks only")
	}

	in := detector.Input{
		Match:      match,
		Target:     target,
		Opponent:   opponent,
		Role:       role,
		Thresholds: a.th,
	}

	// Each detector writes only its own slot.
	var (
		deaths     detector.Result[model.DeathStats]
		cs         detector.Result[model.CSStats]
		vision     detector.Result[model.VisionStats]
		objectives detector.Result[model.ObjectiveStats]
	)
	var g errgroup.Group
	g.Go(func() error { deaths = detector.Deaths(in); return nil })
	g.Go(func() error { cs = detector.CS(in); return nil })
	g.Go(func() error { vision = detector.Vision(in); return nil })
	g.Go(func() error { objectives = detector.Objectives(in); return nil })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run detectors: %w", err)
	}

	mistakes := merge(deaths.Mistakes, cs.Mistakes, vision.Mistakes, objectives.Mistakes)
	log.Debug("detectors done",
		"deaths", len(deaths.Mistakes),
		"cs", len(cs.Mistakes),
		"vision", len(vision.Mistakes),
		"objectives", len(objectives.Mistakes))

	stats := model.Stats{
		Deaths:     deaths.Stats,
		CS:         cs.Stats,
		Vision:     vision.Stats,
		Objectives: objectives.Stats,
	}
	scores := scoring.Calculate(scoring.Input{
		Mistakes:        mistakes,
		Stats:           stats,
		Role:            role,
		Participant:     target,
		DurationMinutes: match.DurationMinutes(),
	})
	tips := coaching.Recommend(mistakes, scores, role, coaching.LimitsFrom(a.th))

	return &model.AnalysisResult{
		MatchID:         match.MatchID,
		PUUID:           target.PUUID,
		ParticipantID:   target.ParticipantID,
		ChampionID:      target.ChampionID,
		ChampionName:    target.ChampionName,
		Role:            role,
		Win:             target.Win,
		DurationSeconds: match.DurationSeconds,
		Mistakes:        mistakes,
		Scores:          scores,
		Tips:            tips,
		Stats:           stats,
	}, nil
}

// merge concatenates the detector outputs in fixed detector order, sorts by
// timestamp keeping that order for ties, and assigns sequential IDs.
func merge(groups ...[]model.FlaggedMistake) []model.FlaggedMistake {
	out := []model.FlaggedMistake{}
	for _, g := range groups {
		out = append(out, g...)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	for i := range out {
		out[i].ID = fmt.Sprintf("M%03d", i+1)
	}
	return out
}
