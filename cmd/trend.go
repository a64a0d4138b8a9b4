package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/report"
)

var trendLast int

var trendCmd = &cobra.Command{
	Use:   "trend <puuid>",
	Short: "Chronological per-match score trend for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrend,
}

func init() {
	trendCmd.Flags().IntVar(&trendLast, "last", 20, "number of most recent matches")
}

func runTrend(cmd *cobra.Command, args []string) error {
	puuid := args[0]
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	trend, err := db.Trend(puuid, trendLast)
	if err != nil {
		return fmt.Errorf("query trend: %w", err)
	}
	counts, err := db.MistakeCounts(puuid)
	if err != nil {
		return fmt.Errorf("query mistakes: %w", err)
	}
	report.PrintTrend(os.Stdout, trend, counts)
	return nil
}
