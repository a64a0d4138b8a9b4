package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/analyzer"
	"github.com/pable/go-lol-coach/internal/riot"
	"github.com/pable/go-lol-coach/internal/storage"
	"github.com/pable/go-lol-coach/internal/timeline"
)

// fetch command flags.
var (
	// fetchCount is the number of recent matches to download.
	fetchCount int
	// fetchQueue restricts the history to one queue id (420 = ranked solo, 0 = any).
	fetchQueue int
	// fetchRegion overrides $LOLCOACH_RIOT_REGION.
	fetchRegion string
	// fetchNoAnalyze only downloads the payloads.
	fetchNoAnalyze bool
	// fetchForce re-analyzes matches already stored for the player.
	fetchForce bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <Name#TAG>",
	Short: "Download a player's recent matches from the Riot API and analyze them",
	Long: `Resolves a Riot ID, downloads the player's most recent match and timeline
payloads into $LOLCOACH_MATCH_DIR (zstd compressed), analyzes the player in
each match and stores the results. Requires RIOT_API_KEY.

Examples:
  lolcoach fetch "Hide on bush#KR1" --region asia --count 5
  lolcoach fetch "Player#NA1" --queue 0 --no-analyze`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().IntVar(&fetchCount, "count", 5, "number of matches to download")
	fetchCmd.Flags().IntVar(&fetchQueue, "queue", 420, "queue id filter (0 for all queues)")
	fetchCmd.Flags().StringVar(&fetchRegion, "region", "", "regional routing value: americas, europe, asia, sea")
	fetchCmd.Flags().BoolVar(&fetchNoAnalyze, "no-analyze", false, "only download, do not analyze")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "re-analyze matches that are already stored")
}

func runFetch(cmd *cobra.Command, args []string) error {
	gameName, tagLine, ok := strings.Cut(args[0], "#")
	if !ok || gameName == "" || tagLine == "" {
		return fmt.Errorf("riot id must look like Name#TAG, got %q", args[0])
	}
	if cfg.RiotAPIKey == "" {
		return fmt.Errorf("no API key: set RIOT_API_KEY")
	}
	region := fetchRegion
	if region == "" {
		region = cfg.RiotRegion
	}
	if err := os.MkdirAll(cfg.MatchDir, 0755); err != nil {
		return fmt.Errorf("create match dir: %w", err)
	}

	var db *storage.DB
	if !fetchNoAnalyze {
		var err error
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	ctx := cmd.Context()
	client := riot.NewClient(cfg.RiotAPIKey, region, riot.WithLogger(logger))

	account, err := client.GetAccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", args[0], err)
	}
	fmt.Printf("Player: %s  puuid=%s...\n", account.RiotID(), account.PUUID[:12])

	ids, err := client.GetMatchIDs(ctx, account.PUUID, fetchQueue, fetchCount)
	if err != nil {
		return fmt.Errorf("match history: %w", err)
	}
	if len(ids) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	var seen *storage.SeenMatches
	if db != nil && !fetchForce {
		if seen, err = db.SeenMatches(account.PUUID); err != nil {
			return fmt.Errorf("load stored matches: %w", err)
		}
	}

	done := 0
	for i, id := range ids {
		fmt.Printf("[%d/%d] %s\n", i+1, len(ids), id)
		if seen != nil {
			stored, err := seen.Contains(id)
			if err != nil {
				return fmt.Errorf("check %s: %w", id, err)
			}
			if stored {
				fmt.Println("  already analyzed, skipping (use --force to redo)")
				done++
				continue
			}
		}

		matchPath, timelinePath := timeline.Paths(cfg.MatchDir, id)
		if !fileExists(matchPath) || !fileExists(timelinePath) {
			if err := download(cmd, client, id, matchPath, timelinePath); err != nil {
				fmt.Fprintf(os.Stderr, "  [error] download: %v\n", err)
				continue
			}
		} else {
			fmt.Println("  already downloaded")
		}
		if fetchNoAnalyze {
			done++
			continue
		}

		match, err := timeline.Load(matchPath, timelinePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  [error] decode: %v\n", err)
			continue
		}
		res, err := analyzeAndStore(ctx, db, match, analyzer.Request{PUUID: account.PUUID})
		if errors.Is(err, analyzer.ErrParticipantNotFound) {
			fmt.Fprintf(os.Stderr, "  [skip] %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
		if seen != nil {
			seen.Add(id)
		}
		fmt.Printf("  %s (%s)  %s  overall=%d  mistakes=%d\n",
			res.ChampionName, res.Role, winLabel(res.Win), res.Scores.Overall, len(res.Mistakes))
		done++
	}

	fmt.Printf("\nDone: %d/%d matches\n", done, len(ids))
	return nil
}

func download(cmd *cobra.Command, client *riot.Client, id, matchPath, timelinePath string) error {
	mb, err := client.GetMatchRaw(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	tb, err := client.GetTimelineRaw(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	if err := timeline.WriteCompressed(matchPath, mb); err != nil {
		return err
	}
	if err := timeline.WriteCompressed(timelinePath, tb); err != nil {
		os.Remove(matchPath)
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func winLabel(win bool) string {
	if win {
		return "W"
	}
	return "L"
}
