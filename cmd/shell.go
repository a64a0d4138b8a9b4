package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/report"
	"github.com/pable/go-lol-coach/internal/storage"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive REPL session",
	Long:  "Open a persistent session against the analysis database. Type 'help' for available commands.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(_ *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	cGreeting.Println("lolcoach shell")
	cMuted.Println("type 'help' or 'exit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("lolcoach")
		cMuted.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tokens := strings.Fields(line)
		name, args := tokens[0], tokens[1:]

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			shellHelp()
		case "list":
			puuid := ""
			if len(args) > 0 {
				puuid = args[0]
			}
			shellList(db, puuid)
		case "show":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: show <id-prefix | match-id> [--details]")
				continue
			}
			details := len(args) > 1 && args[1] == "--details"
			shellShow(db, args[0], details)
		case "trend":
			if len(args) == 0 {
				cError.Fprintln(os.Stderr, "usage: trend <puuid> [n]")
				continue
			}
			n := 20
			if len(args) > 1 {
				v, err := strconv.Atoi(args[1])
				if err != nil || v <= 0 {
					cError.Fprintf(os.Stderr, "invalid count %q\n", args[1])
					continue
				}
				n = v
			}
			shellTrend(db, args[0], n)
		default:
			cWarn.Fprintf(os.Stderr, "unknown command %q, type 'help'\n", name)
		}
	}
	return nil
}

func shellHelp() {
	fmt.Println()
	type entry struct{ cmd, desc string }
	rows := []entry{
		{"list [puuid]", "list stored analyses"},
		{"show <id-prefix | match-id>", "show an analysis"},
		{"show <id-prefix> --details", "same, with per-mistake context"},
		{"trend <puuid> [n]", "score trend over the last n analyses"},
		{"help", "show this message"},
		{"exit / quit", "close the session"},
	}
	for _, r := range rows {
		fmt.Print("  ")
		cCmd.Printf("%-34s", r.cmd)
		fmt.Println(r.desc)
	}
	fmt.Println()
}

func shellList(db *storage.DB, puuid string) {
	list, err := db.ListAnalyses(puuid, 0)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(list) == 0 {
		cMuted.Println("No analyses stored yet.")
		return
	}
	report.PrintAnalysisList(os.Stdout, list)
}

func shellShow(db *storage.DB, prefix string, details bool) {
	rec, err := db.GetAnalysisByPrefix(prefix)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if rec == nil {
		cWarn.Fprintf(os.Stderr, "no analysis found for %q\n", prefix)
		return
	}
	report.PrintAnalysis(os.Stdout, rec.Result)
	if details {
		report.PrintMistakeDetails(os.Stdout, rec.Result.Mistakes)
	}
}

func shellTrend(db *storage.DB, puuid string, n int) {
	trend, err := db.Trend(puuid, n)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	if len(trend) == 0 {
		cMuted.Printf("No analyses stored for %s.\n", puuid)
		return
	}
	counts, err := db.MistakeCounts(puuid)
	if err != nil {
		cError.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	report.PrintTrend(os.Stdout, trend, counts)
}
