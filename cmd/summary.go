package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

// summaryCmd is the cobra command for displaying a high-level database overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about all stored analyses:
analysis and match counts, date range, average scores per role,
and the most common mistake types across every player.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func newSummaryTable() *tablewriter.Table {
	return tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.Analyses == 0 {
		fmt.Fprintln(os.Stdout, "No analyses stored yet. Run 'lolcoach analyze' or 'lolcoach fetch' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	fmt.Fprintf(os.Stdout, "  Analyses stored : %d\n", ov.Analyses)
	fmt.Fprintf(os.Stdout, "  Matches         : %d\n", ov.Matches)
	fmt.Fprintf(os.Stdout, "  Players         : %d\n", ov.Players)
	fmt.Fprintf(os.Stdout, "  Analyzed        : %s → %s\n",
		ov.Earliest.Format("2006-01-02"), ov.Latest.Format("2006-01-02"))

	roles, err := db.GetRoleAverages()
	if err != nil {
		return fmt.Errorf("get role averages: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n--- Roles ---\n\n")
	rt := newSummaryTable()
	rt.Header("ROLE", "GAMES", "WIN%", "CS", "VISION", "POS", "OBJ", "TRADE", "OVERALL")
	for _, r := range roles {
		row := []any{
			r.Role.String(),
			fmt.Sprintf("%d", r.Analyses),
			fmt.Sprintf("%.0f%%", 100*r.WinRate),
		}
		for _, v := range r.Scores {
			row = append(row, fmt.Sprintf("%.1f", v))
		}
		rt.Append(row...)
	}
	rt.Render()

	counts, err := db.MistakeCounts("")
	if err != nil {
		return fmt.Errorf("get mistake counts: %w", err)
	}
	if len(counts) > 0 {
		fmt.Fprintf(os.Stdout, "\n--- Mistakes ---\n\n")
		mt := newSummaryTable()
		mt.Header("TYPE", "CATEGORY", "COUNT", "PER GAME", "CRITICAL")
		for _, c := range counts {
			mt.Append(
				string(c.Type),
				string(c.Type.Category()),
				fmt.Sprintf("%d", c.Count),
				fmt.Sprintf("%.2f", float64(c.Count)/float64(ov.Analyses)),
				fmt.Sprintf("%d", c.Critical),
			)
		}
		mt.Render()
	}

	return nil
}
