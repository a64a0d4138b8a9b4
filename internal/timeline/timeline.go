// Package timeline decodes match-v5 match and timeline payloads into a
// model.Match.
package timeline

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/zstd"

	"github.com/pable/go-lol-coach/internal/model"
)

// ErrNoFrames is returned for a timeline without any snapshot.
var ErrNoFrames = errors.New("timeline has no frames")

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Paths returns where a fetched match and its timeline are stored in dir.
func Paths(dir, matchID string) (matchPath, timelinePath string) {
	return filepath.Join(dir, matchID+".match.json.zst"), filepath.Join(dir, matchID+".timeline.json.zst")
}

// Load reads a match and a timeline file (plain, gzip or zstd) and decodes
// them.
func Load(matchPath, timelinePath string) (*model.Match, error) {
	mb, err := readFile(matchPath)
	if err != nil {
		return nil, fmt.Errorf("read match: %w", err)
	}
	tb, err := readFile(timelinePath)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	return Decode(mb, tb)
}

// Decode builds a Match from raw match and timeline JSON. The hash covers
// both payloads and is the idempotency key for storage.
func Decode(matchJSON, timelineJSON []byte) (*model.Match, error) {
	var md matchDTO
	if err := json.Unmarshal(matchJSON, &md); err != nil {
		return nil, fmt.Errorf("decode match: %w", err)
	}
	var td timelineDTO
	if err := json.Unmarshal(timelineJSON, &td); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}
	if len(td.Info.Frames) == 0 {
		return nil, ErrNoFrames
	}

	h := sha256.New()
	h.Write(matchJSON)
	h.Write(timelineJSON)

	m := &model.Match{
		MatchID:         md.Metadata.MatchID,
		GameVersion:     md.Info.GameVersion,
		DurationSeconds: durationSeconds(md.Info.GameDuration, md.Info.GameEndTimestamp),
		FrameInterval:   td.Info.FrameInterval,
		Hash:            fmt.Sprintf("%x", h.Sum(nil)),
	}
	if m.MatchID == "" {
		m.MatchID = td.Metadata.MatchID
	}

	for _, p := range md.Info.Participants {
		m.Participants = append(m.Participants, convertParticipant(p))
	}

	m.Frames = make([]model.Frame, 0, len(td.Info.Frames))
	for _, f := range td.Info.Frames {
		m.Frames = append(m.Frames, convertFrame(f))
	}
	return m, nil
}

// durationSeconds normalises gameDuration, which older payloads (those
// without gameEndTimestamp) report in milliseconds.
func durationSeconds(d, endTimestamp int64) int {
	if endTimestamp == 0 {
		return int(d / 1000)
	}
	return int(d)
}

func convertParticipant(p participantDTO) model.Participant {
	pos := p.TeamPosition
	if pos == "" {
		pos = p.IndividualPosition
	}
	riotID := p.RiotIDGameName
	if p.RiotIDTagline != "" {
		riotID += "#" + p.RiotIDTagline
	}
	return model.Participant{
		ParticipantID: p.ParticipantID,
		PUUID:         p.PUUID,
		RiotID:        riotID,
		ChampionID:    p.ChampionID,
		ChampionName:  p.ChampionName,
		Team:          model.Team(p.TeamID),
		Role:          model.ParseRole(pos),
		Win:           p.Win,
		Kills:         p.Kills,
		Deaths:        p.Deaths,
		Assists:       p.Assists,
		CS:            p.TotalMinionsKilled + p.NeutralMinionsKilled,
		VisionScore:   p.VisionScore,
		Gold:          p.GoldEarned,
		Damage:        p.TotalDamageDealtToChampions,
	}
}

func convertFrame(f frameDTO) model.Frame {
	out := model.Frame{
		Timestamp:    f.Timestamp,
		Participants: make(map[int]model.ParticipantFrame, len(f.ParticipantFrames)),
		Events:       make([]model.Event, 0, len(f.Events)),
	}
	for key, pf := range f.ParticipantFrames {
		id := pf.ParticipantID
		if id == 0 {
			// Older payloads only carry the id as the map key.
			id, _ = strconv.Atoi(key)
		}
		out.Participants[id] = model.ParticipantFrame{
			ParticipantID:       id,
			Position:            model.Position{X: pf.Position.X, Y: pf.Position.Y},
			TotalGold:           pf.TotalGold,
			CurrentGold:         pf.CurrentGold,
			Level:               pf.Level,
			XP:                  pf.XP,
			MinionsKilled:       pf.MinionsKilled,
			JungleMinionsKilled: pf.JungleMinionsKilled,
		}
	}
	for _, e := range f.Events {
		ev := model.Event{
			Kind:           model.EventKind(e.Type),
			Timestamp:      e.Timestamp,
			KillerID:       e.KillerID,
			VictimID:       e.VictimID,
			AssistingIDs:   e.AssistingParticipantIDs,
			MonsterType:    e.MonsterType,
			MonsterSubType: e.MonsterSubType,
			KillerTeam:     model.Team(e.KillerTeamID),
			WardType:       e.WardType,
			CreatorID:      e.CreatorID,
			ParticipantID:  e.ParticipantID,
			ItemID:         e.ItemID,
			BuildingType:   e.BuildingType,
			LaneType:       e.LaneType,
			TeamID:         model.Team(e.TeamID),
		}
		if e.Position != nil {
			ev.Position = &model.Position{X: e.Position.X, Y: e.Position.Y}
		}
		out.Events = append(out.Events, ev)
	}
	return out
}

// readFile returns the decompressed contents of path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decompress(f)
}

// Decompress reads r fully, transparently undoing gzip or zstd compression
// detected from the leading magic bytes.
func Decompress(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	case bytes.HasPrefix(data, gzipMagic):
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return data, nil
}

// WriteCompressed writes data zstd-compressed to path.
func WriteCompressed(path string, data []byte) error {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	if err := os.WriteFile(path, enc.EncodeAll(data, nil), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
