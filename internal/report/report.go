package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-lol-coach/internal/model"
	"github.com/pable/go-lol-coach/internal/storage"
)

var (
	cCritical = color.New(color.FgRed, color.Bold)
	cHigh     = color.New(color.FgRed)
	cMedium   = color.New(color.FgYellow)
	cLow      = color.New(color.Faint)
	cGood     = color.New(color.FgGreen)
	cHeader   = color.New(color.Bold)
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func newLeftTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// severityLabel colours a severity for terminal output.
func severityLabel(s model.Severity) string {
	label := strings.ToUpper(s.String())
	switch s {
	case model.SeverityCritical:
		return cCritical.Sprint(label)
	case model.SeverityHigh:
		return cHigh.Sprint(label)
	case model.SeverityMedium:
		return cMedium.Sprint(label)
	default:
		return cLow.Sprint(label)
	}
}

// scoreLabel colours a 0..100 score: green from 80, yellow from 60, red below.
func scoreLabel(v int) string {
	s := strconv.Itoa(v)
	switch {
	case v >= 80:
		return cGood.Sprint(s)
	case v >= 60:
		return cMedium.Sprint(s)
	default:
		return cHigh.Sprint(s)
	}
}

func winLabel(win bool) string {
	if win {
		return "W"
	}
	return "L"
}

// PrintAnalysis writes the full report of one analysis.
func PrintAnalysis(w io.Writer, res *model.AnalysisResult) {
	PrintAnalysisHeader(w, res)
	PrintScores(w, res.Scores)
	fmt.Fprintln(w)
	PrintMistakes(w, res.Mistakes)
	fmt.Fprintln(w)
	PrintTips(w, res.Tips)
}

// PrintAnalysisHeader prints a one-line summary header for the analysis.
func PrintAnalysisHeader(w io.Writer, res *model.AnalysisResult) {
	fmt.Fprintf(w, "\nMatch: %s  |  %s (%s)  |  %s  |  Duration: %s  |  Overall: %s\n\n",
		res.MatchID, res.ChampionName, res.Role, winLabel(res.Win),
		model.FormatClock(int64(res.DurationSeconds)*1000), scoreLabel(res.Scores.Overall))
}

// PrintScores prints the category scores as a single-row table.
func PrintScores(w io.Writer, s model.ScoreBreakdown) {
	table := newTable(w)
	header := make([]any, 0, len(model.Categories)+1)
	row := make([]any, 0, len(model.Categories)+1)
	for _, c := range model.Categories {
		header = append(header, strings.ToUpper(string(c)))
		row = append(row, scoreLabel(s.Get(c)))
	}
	header = append(header, "OVERALL")
	row = append(row, scoreLabel(s.Overall))
	table.Header(header...)
	table.Append(row...)
	table.Render()
}

// PrintMistakes prints the flagged mistakes in timeline order.
func PrintMistakes(w io.Writer, mistakes []model.FlaggedMistake) {
	if len(mistakes) == 0 {
		fmt.Fprintln(w, cGood.Sprint("No mistakes flagged."))
		return
	}
	cHeader.Fprintf(w, "Mistakes (%d)\n", len(mistakes))
	table := newLeftTable(w)
	table.Header("ID", "TIME", "SEVERITY", "TYPE", "PHASE", "TITLE")
	for _, m := range mistakes {
		table.Append(m.ID, m.Clock(), severityLabel(m.Severity), string(m.Type), string(m.Context.Phase), m.Title)
	}
	table.Render()
}

// PrintMistakeDetails prints every mistake with its description, suggestion
// and coaching note.
func PrintMistakeDetails(w io.Writer, mistakes []model.FlaggedMistake) {
	for _, m := range mistakes {
		fmt.Fprintf(w, "%s  %s  [%s]  %s\n", m.ID, m.Clock(), severityLabel(m.Severity), m.Title)
		fmt.Fprintf(w, "    %s\n", m.Description)
		fmt.Fprintf(w, "    -> %s\n", m.Suggestion)
		if m.CoachingNote != "" {
			fmt.Fprintf(w, "    %s\n", cLow.Sprint(m.CoachingNote))
		}
		fmt.Fprintln(w)
	}
}

// PrintTips prints the coaching tips in priority order.
func PrintTips(w io.Writer, tips []model.CoachingTip) {
	if len(tips) == 0 {
		return
	}
	cHeader.Fprintln(w, "Coaching tips")
	for _, t := range tips {
		scope := string(t.Category)
		if t.Role != nil {
			scope = t.Role.String()
		}
		fmt.Fprintf(w, "%d. %s (%s)\n   %s\n", t.Priority, cHeader.Sprint(t.Title), scope, t.Description)
		if len(t.RelatedMistakeIDs) > 0 {
			fmt.Fprintf(w, "   see %s\n", strings.Join(t.RelatedMistakeIDs, ", "))
		}
	}
}

// PrintStats prints the raw detector statistics.
func PrintStats(w io.Writer, s model.Stats) {
	table := newTable(w)
	table.Header("DEATHS", "SOLO", "CS/MIN", "CS@10", "DIFF@10", "WARDS", "CLEARED", "CONTROL", "VIS/MIN", "OBJ_LOST", "OBJ_CONTESTED")
	table.Append(
		strconv.Itoa(s.Deaths.Total),
		strconv.Itoa(s.Deaths.Solo),
		fmt.Sprintf("%.1f", s.CS.PerMinute),
		optInt(s.CS.CSAt10),
		optInt(s.CS.DiffAt10),
		strconv.Itoa(s.Vision.WardsPlaced),
		strconv.Itoa(s.Vision.WardsKilled),
		strconv.Itoa(s.Vision.ControlWards),
		fmt.Sprintf("%.2f", s.Vision.PerMinute),
		strconv.Itoa(s.Objectives.Lost()),
		strconv.Itoa(s.Objectives.Contested()),
	)
	table.Render()
}

func optInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}

// PrintAnalysisList prints stored analyses, one row each.
func PrintAnalysisList(w io.Writer, list []storage.Summary) {
	table := newTable(w)
	table.Header("ID", "MATCH", "DATE", "CHAMPION", "ROLE", "W/L", "CS", "VIS", "POS", "OBJ", "TRD", "OVERALL", "MISTAKES")
	for _, s := range list {
		table.Append(
			s.ID[:8],
			s.MatchID,
			s.AnalyzedAt.Format("2006-01-02"),
			s.Champion,
			s.Role.String(),
			winLabel(s.Win),
			strconv.Itoa(s.Scores.CS),
			strconv.Itoa(s.Scores.Vision),
			strconv.Itoa(s.Scores.Positioning),
			strconv.Itoa(s.Scores.Objectives),
			strconv.Itoa(s.Scores.Trading),
			scoreLabel(s.Scores.Overall),
			strconv.Itoa(s.MistakeCount),
		)
	}
	table.Render()
}

// PrintTrend prints per-match scores oldest first, the average over the
// window and the player's most frequent mistakes across all stored matches.
func PrintTrend(w io.Writer, trend []storage.Summary, counts []storage.MistakeTypeCount) {
	if len(trend) == 0 {
		fmt.Fprintln(w, "No analyses stored for this player.")
		return
	}
	table := newTable(w)
	table.Header("MATCH", "CHAMPION", "W/L", "CS", "VIS", "POS", "OBJ", "TRD", "OVERALL")
	var sum [6]int
	for _, s := range trend {
		table.Append(
			s.MatchID, s.Champion, winLabel(s.Win),
			strconv.Itoa(s.Scores.CS),
			strconv.Itoa(s.Scores.Vision),
			strconv.Itoa(s.Scores.Positioning),
			strconv.Itoa(s.Scores.Objectives),
			strconv.Itoa(s.Scores.Trading),
			scoreLabel(s.Scores.Overall),
		)
		for i, c := range model.Categories {
			sum[i] += s.Scores.Get(c)
		}
		sum[5] += s.Scores.Overall
	}
	avg := func(i int) string {
		return fmt.Sprintf("%.1f", float64(sum[i])/float64(len(trend)))
	}
	table.Footer("AVG", "", "", avg(0), avg(1), avg(2), avg(3), avg(4), avg(5))
	table.Render()

	if len(counts) == 0 {
		return
	}
	fmt.Fprintln(w)
	cHeader.Fprintln(w, "Recurring mistakes")
	mt := newTable(w)
	mt.Header("TYPE", "CATEGORY", "COUNT", "CRITICAL")
	for _, c := range counts {
		mt.Append(
			string(c.Type),
			string(c.Type.Category()),
			strconv.Itoa(c.Count),
			strconv.Itoa(c.Critical),
		)
	}
	mt.Render()
}
