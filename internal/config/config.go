// Package config loads lolcoach settings from the environment.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting of the CLI.
type Config struct {
	DBPath          string        `env:"LOLCOACH_DB"`
	MatchDir        string        `env:"LOLCOACH_MATCH_DIR"`
	LogLevel        string        `env:"LOLCOACH_LOG_LEVEL" envDefault:"info"`
	RiotAPIKey      string        `env:"RIOT_API_KEY"`
	RiotRegion      string        `env:"LOLCOACH_RIOT_REGION" envDefault:"americas"`
	AnthropicAPIKey string        `env:"ANTHROPIC_API_KEY"`
	RedisURL        string        `env:"LOLCOACH_REDIS_URL"`
	CacheTTL        time.Duration `env:"LOLCOACH_CACHE_TTL" envDefault:"24h"`

	Thresholds Thresholds `envPrefix:"LOLCOACH_"`
}

// Thresholds are the tunable constants of the detectors and the
// recommendation generator.
type Thresholds struct {
	// Death detector.
	TowerDangerRadius float64 `env:"TOWER_DANGER_RADIUS" envDefault:"900"`
	IsolationDistance float64 `env:"ISOLATION_DISTANCE" envDefault:"2500"`
	GankAssists       int     `env:"GANK_ASSISTS" envDefault:"2"`
	GoldDeficit       int     `env:"GOLD_DEFICIT" envDefault:"1000"`
	LevelDeficit      int     `env:"LEVEL_DEFICIT" envDefault:"1"`

	// CS detector.
	CSCheckpointMinutes int `env:"CS_CHECKPOINT_MINUTES" envDefault:"5"`
	CSLastCheckpoint    int `env:"CS_LAST_CHECKPOINT" envDefault:"30"`
	CSDeficit           int `env:"CS_DEFICIT" envDefault:"15"`
	CSDeficitStep       int `env:"CS_DEFICIT_STEP" envDefault:"10"`

	// Vision detector.
	VisionWindowMinutes   int     `env:"VISION_WINDOW_MINUTES" envDefault:"5"`
	VisionStartMinute     int     `env:"VISION_START_MINUTE" envDefault:"10"`
	NonSupportVisionScale float64 `env:"NON_SUPPORT_VISION_SCALE" envDefault:"0.5"`

	// Objective detector.
	ObjectiveProximity float64       `env:"OBJECTIVE_PROXIMITY" envDefault:"4000"`
	RespawnEarly       time.Duration `env:"RESPAWN_EARLY" envDefault:"15s"`
	RespawnMid         time.Duration `env:"RESPAWN_MID" envDefault:"30s"`
	RespawnLate        time.Duration `env:"RESPAWN_LATE" envDefault:"50s"`

	// Recommendations.
	MaxTips        int `env:"MAX_TIPS" envDefault:"5"`
	MaxRoleTips    int `env:"MAX_ROLE_TIPS" envDefault:"2"`
	MaxRelated     int `env:"MAX_RELATED_MISTAKES" envDefault:"3"`
	WeakScoreBelow int `env:"WEAK_SCORE_BELOW" envDefault:"60"`
}

// DefaultThresholds returns the thresholds with every default applied and
// no environment overrides.
func DefaultThresholds() Thresholds {
	var t Thresholds
	// Parsing an empty environment only applies envDefault tags.
	if err := env.ParseWithOptions(&t, env.Options{Environment: map[string]string{}}); err != nil {
		panic(fmt.Sprintf("default thresholds: %v", err))
	}
	return t
}

// Fingerprint is a short digest of every threshold value. Results computed
// under different thresholds have different fingerprints.
func (t Thresholds) Fingerprint() string {
	b, err := json.Marshal(t)
	if err != nil {
		panic(fmt.Sprintf("fingerprint thresholds: %v", err))
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:6])
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	for _, path := range envFiles() {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(HomeDir(), "metrics.db")
	}
	if cfg.MatchDir == "" {
		cfg.MatchDir = filepath.Join(HomeDir(), "matches")
	}
	return cfg, nil
}

// HomeDir is the per-user lolcoach directory (~/.lolcoach).
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lolcoach"
	}
	return filepath.Join(home, ".lolcoach")
}

func envFiles() []string {
	return []string{".env", filepath.Join(HomeDir(), ".env")}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the CLI logger: text on stderr at the given level.
func NewLogger(level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(level)}))
}
