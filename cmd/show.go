package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showDetails bool
	showStats   bool
	showJSON    bool
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix | match-id>",
	Short: "Show a stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showDetails, "details", false, "print descriptions and suggestions for every mistake")
	showCmd.Flags().BoolVar(&showStats, "stats", false, "print the raw detector statistics")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the stored result as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := db.GetAnalysisByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query analysis: %w", err)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No analysis found for %q\n", prefix)
		return nil
	}
	return printResult(rec.Result, showJSON, showDetails, showStats)
}
