package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-lol-coach/internal/model"
)

const coachSystemPrompt = `You are a League of Legends coach. You are given the structured output of a
post-match analysis tool for one player and, optionally, a question from the player.

Rules:
- Answer ONLY from the data provided. Never invent statistics or events.
- Refer to mistakes by their id and game clock (e.g. M003 at 22:10).
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise and actionable: at most three focus points for the next games.

Data glossary:
- scores: 0-100 per area (cs, vision, positioning, objectives, trading) and overall.
- severity: low < medium < high < critical.
- phase: early (<14 min), mid (14-25 min), late (25+ min).
- context.zone.safety: safe, neutral or danger for the player's team.
- context.gold.diff / context.level.diff: player minus lane opponent (or killer).
- stats: raw detector counters; cs.per_minute, vision.per_minute, objectives by type.`

const defaultCoachQuestion = "What are the most important things I should work on based on this game?"

var (
	coachModel  string
	coachAPIKey string
)

var coachCmd = &cobra.Command{
	Use:   "coach <id-prefix | match-id> [question]",
	Short: "Narrative coaching over a stored analysis (requires ANTHROPIC_API_KEY)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCoach,
}

func init() {
	coachCmd.Flags().StringVar(&coachModel, "model", "claude-haiku-4-5-20251001", "Anthropic model to use")
	coachCmd.Flags().StringVar(&coachAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
}

func runCoach(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rec, err := db.GetAnalysisByPrefix(args[0])
	if err != nil {
		return fmt.Errorf("find analysis: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("no analysis found for %q", args[0])
	}
	question := defaultCoachQuestion
	if len(args) == 2 {
		question = args[1]
	}

	contextJSON, err := buildCoachContext(rec.Result)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	apiKey := coachAPIKey
	if apiKey == "" {
		apiKey = cfg.AnthropicAPIKey
	}
	return callAnthropic(cmd.Context(), apiKey, coachModel, contextJSON, question)
}

// buildCoachContext serialises an analysis into compact JSON for the prompt.
// Tips are left out so the narrative is derived from the evidence.
func buildCoachContext(res *model.AnalysisResult) (string, error) {
	type mistakeEntry struct {
		ID          string               `json:"id"`
		Clock       string               `json:"clock"`
		Type        model.MistakeType    `json:"type"`
		Severity    model.Severity       `json:"severity"`
		Title       string               `json:"title"`
		Description string               `json:"description"`
		Context     model.MistakeContext `json:"context"`
	}
	mistakes := make([]mistakeEntry, 0, len(res.Mistakes))
	for _, m := range res.Mistakes {
		mistakes = append(mistakes, mistakeEntry{
			ID:          m.ID,
			Clock:       m.Clock(),
			Type:        m.Type,
			Severity:    m.Severity,
			Title:       m.Title,
			Description: m.Description,
			Context:     m.Context,
		})
	}

	doc := map[string]interface{}{
		"match_id": res.MatchID,
		"champion": res.ChampionName,
		"role":     res.Role,
		"win":      res.Win,
		"duration": model.FormatClock(int64(res.DurationSeconds) * 1000),
		"scores":   res.Scores,
		"mistakes": mistakes,
		"stats":    res.Stats.Values(),
	}
	b, err := json.Marshal(doc)
	return string(b), err
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── Coaching ────────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: coachSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed: check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
