package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pable/go-lol-coach/internal/model"
)

// Summary is one stored analysis without its full result payload.
type Summary struct {
	ID              string
	MatchID         string
	MatchHash       string
	GameVersion     string
	PUUID           string
	Champion        string
	Role            model.Role
	Win             bool
	DurationSeconds int
	Scores          model.ScoreBreakdown
	MistakeCount    int
	AnalyzedAt      time.Time
}

// Record is a stored analysis with its decoded result.
type Record struct {
	Summary
	Result *model.AnalysisResult
}

// AnalysisID derives the stable record id of one analysis: the same match
// payload, player and role always map to the same id.
func AnalysisID(matchHash, puuid string, role model.Role) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("lolcoach:"+matchHash+":"+puuid+":"+role.String())).String()
}

// AnalysisExists returns true if an analysis with the given id is stored.
func (db *DB) AnalysisExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM analyses WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertAnalysis stores a result with its mistakes and tips and returns the
// record id. Re-inserting the same analysis replaces it.
func (db *DB) InsertAnalysis(matchHash, gameVersion string, res *model.AnalysisResult, at time.Time) (string, error) {
	id := AnalysisID(matchHash, res.PUUID, res.Role)
	payload, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM mistakes WHERE analysis_id = ?",
		"DELETE FROM tips WHERE analysis_id = ?",
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return "", fmt.Errorf("clear previous analysis: %w", err)
		}
	}

	s := res.Scores
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO analyses(
			id, match_hash, match_id, game_version, puuid, participant_id,
			champion, role, win, duration_seconds,
			score_cs, score_vision, score_positioning, score_objectives, score_trading, score_overall,
			mistake_count, analyzed_at, result_json
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id, matchHash, res.MatchID, gameVersion, res.PUUID, res.ParticipantID,
		res.ChampionName, res.Role.String(), boolInt(res.Win), res.DurationSeconds,
		s.CS, s.Vision, s.Positioning, s.Objectives, s.Trading, s.Overall,
		len(res.Mistakes), at.UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}

	mstmt, err := tx.Prepare(`
		INSERT INTO mistakes(analysis_id, mistake_id, type, category, severity, timestamp_ms, phase, title)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return "", err
	}
	defer mstmt.Close()
	for _, m := range res.Mistakes {
		if _, err := mstmt.Exec(id, m.ID, string(m.Type), string(m.Type.Category()),
			m.Severity.String(), m.Timestamp, string(m.Context.Phase), m.Title); err != nil {
			return "", fmt.Errorf("insert mistake %s: %w", m.ID, err)
		}
	}

	tstmt, err := tx.Prepare(`
		INSERT INTO tips(analysis_id, tip_id, priority, category, title) VALUES (?,?,?,?,?)`)
	if err != nil {
		return "", err
	}
	defer tstmt.Close()
	for _, t := range res.Tips {
		if _, err := tstmt.Exec(id, t.ID, t.Priority, string(t.Category), t.Title); err != nil {
			return "", fmt.Errorf("insert tip %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

const summaryColumns = `
	id, match_id, match_hash, game_version, puuid, champion, role, win, duration_seconds,
	score_cs, score_vision, score_positioning, score_objectives, score_trading, score_overall,
	mistake_count, analyzed_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner, extra ...any) (Summary, error) {
	var (
		s       Summary
		role    string
		winInt  int
		atText  string
		targets = []any{
			&s.ID, &s.MatchID, &s.MatchHash, &s.GameVersion, &s.PUUID, &s.Champion, &role, &winInt, &s.DurationSeconds,
			&s.Scores.CS, &s.Scores.Vision, &s.Scores.Positioning, &s.Scores.Objectives, &s.Scores.Trading, &s.Scores.Overall,
			&s.MistakeCount, &atText,
		}
	)
	if err := row.Scan(append(targets, extra...)...); err != nil {
		return Summary{}, err
	}
	s.Role = model.ParseRole(role)
	s.Win = winInt != 0
	at, err := time.Parse(time.RFC3339, atText)
	if err != nil {
		return Summary{}, fmt.Errorf("analysis %s: analyzed_at: %w", s.ID, err)
	}
	s.AnalyzedAt = at
	return s, nil
}

// GetAnalysisByPrefix finds the most recent analysis whose id starts with
// prefix or whose match id equals it. It returns nil when nothing matches.
func (db *DB) GetAnalysisByPrefix(prefix string) (*Record, error) {
	var payload string
	row := db.conn.QueryRow(`SELECT`+summaryColumns+`, result_json
		FROM analyses WHERE id LIKE ? OR match_id = ?
		ORDER BY analyzed_at DESC, id LIMIT 1`, prefix+"%", prefix)
	s, err := scanSummary(row, &payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res model.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decode analysis %s: %w", s.ID, err)
	}
	return &Record{Summary: s, Result: &res}, nil
}

// ListAnalyses returns stored analyses newest first, optionally restricted
// to one player. limit <= 0 means no limit.
func (db *DB) ListAnalyses(puuid string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := db.conn.Query(`SELECT`+summaryColumns+`
		FROM analyses WHERE (? = '' OR puuid = ?)
		ORDER BY analyzed_at DESC, id LIMIT ?`, puuid, puuid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Trend returns a player's last n analyses oldest first.
func (db *DB) Trend(puuid string, n int) ([]Summary, error) {
	list, err := db.ListAnalyses(puuid, n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list, nil
}

// MistakeTypeCount is how often a player made one kind of mistake.
type MistakeTypeCount struct {
	Type     model.MistakeType
	Count    int
	Critical int
}

// MistakeCounts tallies stored mistakes by type, most frequent first. An
// empty puuid counts every player.
func (db *DB) MistakeCounts(puuid string) ([]MistakeTypeCount, error) {
	rows, err := db.conn.Query(`
		SELECT m.type, COUNT(1), SUM(CASE WHEN m.severity = 'critical' THEN 1 ELSE 0 END)
		FROM mistakes m JOIN analyses a ON a.id = m.analysis_id
		WHERE (? = '' OR a.puuid = ?)
		GROUP BY m.type
		ORDER BY COUNT(1) DESC, m.type`, puuid, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MistakeTypeCount
	for rows.Next() {
		var c MistakeTypeCount
		var typ string
		if err := rows.Scan(&typ, &c.Count, &c.Critical); err != nil {
			return nil, err
		}
		c.Type = model.MistakeType(typ)
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteAnalysis removes one analysis and its mistakes and tips.
func (db *DB) DeleteAnalysis(id string) error {
	_, err := db.conn.Exec("DELETE FROM analyses WHERE id = ?", id)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
