package storage

import (
	"fmt"
	"time"

	"github.com/pable/go-lol-coach/internal/model"
)

// Overview summarises the whole store.
type Overview struct {
	Analyses int
	Matches  int
	Players  int
	Earliest time.Time
	Latest   time.Time
}

// RoleAverage is the mean score profile of every analysis played in a role.
type RoleAverage struct {
	Role     model.Role
	Analyses int
	WinRate  float64
	Scores   [6]float64 // model.Categories order, then overall
}

// GetOverview returns store-wide counts and the analyzed_at range.
func (db *DB) GetOverview() (Overview, error) {
	var (
		ov       Overview
		earliest string
		latest   string
	)
	err := db.conn.QueryRow(`
		SELECT COUNT(1), COUNT(DISTINCT match_id), COUNT(DISTINCT puuid),
		       COALESCE(MIN(analyzed_at), ''), COALESCE(MAX(analyzed_at), '')
		FROM analyses`).Scan(&ov.Analyses, &ov.Matches, &ov.Players, &earliest, &latest)
	if err != nil {
		return Overview{}, err
	}
	if ov.Analyses == 0 {
		return ov, nil
	}
	if ov.Earliest, err = time.Parse(time.RFC3339, earliest); err != nil {
		return Overview{}, fmt.Errorf("earliest analyzed_at: %w", err)
	}
	if ov.Latest, err = time.Parse(time.RFC3339, latest); err != nil {
		return Overview{}, fmt.Errorf("latest analyzed_at: %w", err)
	}
	return ov, nil
}

// GetRoleAverages returns the mean scores per role, roles in display order.
func (db *DB) GetRoleAverages() ([]RoleAverage, error) {
	rows, err := db.conn.Query(`
		SELECT role, COUNT(1), AVG(win),
		       AVG(score_cs), AVG(score_vision), AVG(score_positioning),
		       AVG(score_objectives), AVG(score_trading), AVG(score_overall)
		FROM analyses GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byRole := make(map[model.Role]RoleAverage)
	for rows.Next() {
		var (
			ra   RoleAverage
			role string
		)
		if err := rows.Scan(&role, &ra.Analyses, &ra.WinRate,
			&ra.Scores[0], &ra.Scores[1], &ra.Scores[2], &ra.Scores[3], &ra.Scores[4], &ra.Scores[5]); err != nil {
			return nil, err
		}
		ra.Role = model.ParseRole(role)
		byRole[ra.Role] = ra
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var out []RoleAverage
	order := append([]model.Role{}, model.Roles...)
	for _, r := range append(order, model.RoleUnknown) {
		if ra, ok := byRole[r]; ok {
			out = append(out, ra)
		}
	}
	return out, nil
}
