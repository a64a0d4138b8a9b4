package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/analyzer"
	"github.com/pable/go-lol-coach/internal/cache"
	"github.com/pable/go-lol-coach/internal/model"
	"github.com/pable/go-lol-coach/internal/report"
	"github.com/pable/go-lol-coach/internal/storage"
	"github.com/pable/go-lol-coach/internal/timeline"
)

var (
	analyzePlayer  string
	analyzeRole    string
	analyzeDetails bool
	analyzeJSON    bool
	analyzeNoStore bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <match-id | match.json timeline.json>",
	Short: "Analyze one player in a match and store the result",
	Long: `Analyze one player's performance in a match.

The match is either a match id previously saved by 'lolcoach fetch' (read from
$LOLCOACH_MATCH_DIR) or a pair of match-v5 match and timeline files. Files may
be plain JSON, gzip or zstd compressed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzePlayer, "player", "p", "", "player PUUID or Riot ID (Name#TAG)")
	analyzeCmd.Flags().StringVar(&analyzeRole, "role", "", "override role: top, jungle, mid, bottom, support")
	analyzeCmd.Flags().BoolVar(&analyzeDetails, "details", false, "print descriptions and suggestions for every mistake")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoStore, "no-store", false, "do not persist the result")
	analyzeCmd.MarkFlagRequired("player")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	match, err := loadMatch(args)
	if err != nil {
		return err
	}
	puuid, err := resolvePlayer(match, analyzePlayer)
	if err != nil {
		return err
	}
	role, err := parseRoleFlag(analyzeRole)
	if err != nil {
		return err
	}

	var db *storage.DB
	if !analyzeNoStore {
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	res, err := analyzeAndStore(cmd.Context(), db, match, analyzer.Request{PUUID: puuid, Role: role})
	if err != nil {
		return err
	}
	return printResult(res, analyzeJSON, analyzeDetails, false)
}

// loadMatch reads a match by saved id or from a match/timeline file pair.
func loadMatch(args []string) (*model.Match, error) {
	var matchPath, timelinePath string
	if len(args) == 2 {
		matchPath, timelinePath = args[0], args[1]
	} else {
		matchPath, timelinePath = timeline.Paths(cfg.MatchDir, args[0])
	}
	m, err := timeline.Load(matchPath, timelinePath)
	if err != nil {
		return nil, fmt.Errorf("load match: %w", err)
	}
	logger.Debug("match loaded", "match", m.MatchID, "frames", len(m.Frames), "hash", m.Hash[:12])
	return m, nil
}

// resolvePlayer accepts a PUUID or a Riot ID (case-insensitive) and returns
// the PUUID of the matching participant.
func resolvePlayer(m *model.Match, player string) (string, error) {
	if _, ok := m.ParticipantByPUUID(player); ok {
		return player, nil
	}
	if strings.Contains(player, "#") {
		for _, p := range m.Participants {
			if strings.EqualFold(p.RiotID, player) {
				return p.PUUID, nil
			}
		}
	}
	return "", fmt.Errorf("player %q did not play in match %s: %w", player, m.MatchID, analyzer.ErrParticipantNotFound)
}

func parseRoleFlag(s string) (model.Role, error) {
	if s == "" {
		return model.RoleUnknown, nil
	}
	r := model.ParseRole(s)
	if r == model.RoleUnknown {
		return r, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// analyzeAndStore runs the analysis, consulting and filling the Redis cache
// when one is configured, and persists the result when db is non-nil.
func analyzeAndStore(ctx context.Context, db *storage.DB, match *model.Match, req analyzer.Request) (*model.AnalysisResult, error) {
	c := openCache(ctx)
	if c != nil {
		defer c.Close()
	}

	var key string
	if c != nil {
		// The effective role is only known after resolution, so key by the
		// requested one.
		key = cache.Key(match.Hash, req.PUUID, req.Role, cfg.Thresholds.Fingerprint())
		res, err := c.Get(ctx, key)
		switch {
		case err == nil:
			logger.Debug("cache hit", "key", key)
			return res, storeResult(db, match, res)
		case !errors.Is(err, cache.ErrMiss):
			logger.Warn("cache read failed", "err", err)
		}
	}

	res, err := analyzer.New(cfg.Thresholds, logger).Analyze(match, req)
	if err != nil {
		return nil, err
	}

	if c != nil {
		if err := c.Put(ctx, key, res); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}
	return res, storeResult(db, match, res)
}

func storeResult(db *storage.DB, match *model.Match, res *model.AnalysisResult) error {
	if db == nil {
		return nil
	}
	id, err := db.InsertAnalysis(match.Hash, match.GameVersion, res, time.Now())
	if err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}
	logger.Info("analysis stored", "id", id[:8], "match", res.MatchID)
	return nil
}

// openCache connects to Redis when LOLCOACH_REDIS_URL is set. A cache that
// cannot be reached is logged and skipped.
func openCache(ctx context.Context) *cache.Cache {
	if cfg.RedisURL == "" {
		return nil
	}
	c, err := cache.Dial(ctx, cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, continuing without cache", "err", err)
		return nil
	}
	return c
}

func printResult(res *model.AnalysisResult, asJSON, details, stats bool) error {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	report.PrintAnalysis(os.Stdout, res)
	if details && len(res.Mistakes) > 0 {
		fmt.Fprintln(os.Stdout)
		report.PrintMistakeDetails(os.Stdout, res.Mistakes)
	}
	if stats {
		fmt.Fprintln(os.Stdout)
		report.PrintStats(os.Stdout, res.Stats)
	}
	return nil
}
