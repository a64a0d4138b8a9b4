package storage

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// SeenMatches answers whether a player's match has already been analyzed.
// Negatives come from a bloom filter without touching the database;
// positives are confirmed with a query.
type SeenMatches struct {
	db     *DB
	puuid  string
	filter *bloom.BloomFilter
}

// SeenMatches loads the match ids stored for puuid into a bloom filter.
func (db *DB) SeenMatches(puuid string) (*SeenMatches, error) {
	rows, err := db.conn.Query("SELECT DISTINCT match_id FROM analyses WHERE puuid = ?", puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	s := &SeenMatches{db: db, puuid: puuid, filter: bloom.NewWithEstimates(100000, 0.001)}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		s.filter.AddString(id)
	}
	return s, rows.Err()
}

// Contains reports whether matchID has a stored analysis for the player.
func (s *SeenMatches) Contains(matchID string) (bool, error) {
	if !s.filter.TestString(matchID) {
		return false, nil
	}
	var count int
	err := s.db.conn.QueryRow(
		"SELECT COUNT(1) FROM analyses WHERE puuid = ? AND match_id = ?", s.puuid, matchID,
	).Scan(&count)
	return count > 0, err
}

// Add records matchID as analyzed for the rest of the session.
func (s *SeenMatches) Add(matchID string) {
	s.filter.AddString(matchID)
}
