package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/report"
)

var (
	listPlayer string
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listPlayer, "puuid", "", "only analyses of this player")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum rows (0 for all)")
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := db.ListAnalyses(listPlayer, listLimit)
	if err != nil {
		return fmt.Errorf("list analyses: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(os.Stdout, "No analyses stored yet. Run 'lolcoach analyze' or 'lolcoach fetch' to add one.")
		return nil
	}
	report.PrintAnalysisList(os.Stdout, list)
	return nil
}
