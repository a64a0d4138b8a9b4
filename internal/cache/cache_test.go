package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pable/go-lol-coach/internal/model"
)

func TestKey(t *testing.T) {
	got := Key("abc", "p1", model.RoleSupport, "f00d")
	if got != "lolcoach:analysis:abc:p1:support:f00d" {
		t.Errorf("Key = %q", got)
	}
	if Key("abc", "p1", model.RoleMid, "f00d") == got {
		t.Error("role must be part of the key")
	}
	if Key("abc", "p1", model.RoleSupport, "beef") == got {
		t.Error("thresholds fingerprint must be part of the key")
	}
}

func TestNewDefaultTTL(t *testing.T) {
	c := New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), 0)
	defer c.Close()
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultTTL)
	}
}

func TestDialBadURL(t *testing.T) {
	if _, err := Dial(context.Background(), "not a url", time.Hour); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

// TestRoundTrip needs a running server; it is skipped when none answers on
// the default port.
func TestRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := Dial(ctx, "redis://127.0.0.1:6379/15", time.Minute)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	defer c.Close()

	key := Key("test-hash", "p1", model.RoleMid, "test")
	if _, err := c.Get(ctx, key+":missing"); !errors.Is(err, ErrMiss) {
		t.Fatalf("Get missing = %v, want ErrMiss", err)
	}
	want := &model.AnalysisResult{MatchID: "NA1_1", PUUID: "p1", Role: model.RoleMid,
		Scores: model.ScoreBreakdown{Overall: 77}}
	if err := c.Put(ctx, key, want); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := c.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.MatchID != want.MatchID || got.Role != model.RoleMid || got.Scores.Overall != 77 {
		t.Errorf("got %+v", got)
	}
	c.client.Del(ctx, key)
}
