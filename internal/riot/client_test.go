package riot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestGetAccountByRiotID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Riot-Token") != "RGAPI-test" {
			t.Errorf("X-Riot-Token = %q", r.Header.Get("X-Riot-Token"))
		}
		if r.URL.EscapedPath() != "/riot/account/v1/accounts/by-riot-id/Faker%20Jr/KR1" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"puuid":"p-1","gameName":"Faker Jr","tagLine":"KR1"}`))
	}))
	defer server.Close()

	c := NewClient("RGAPI-test", "asia", WithBaseURL(server.URL))
	a, err := c.GetAccountByRiotID(context.Background(), "Faker Jr", "KR1")
	if err != nil {
		t.Fatalf("GetAccountByRiotID: %v", err)
	}
	if a.PUUID != "p-1" || a.RiotID() != "Faker Jr#KR1" {
		t.Errorf("got %+v", a)
	}
}

func TestGetMatchIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("count"); got != "3" {
			t.Errorf("count = %q, want 3", got)
		}
		if got := r.URL.Query().Get("queue"); got != "420" {
			t.Errorf("queue = %q, want 420", got)
		}
		w.Write([]byte(`["NA1_1","NA1_2","NA1_3"]`))
	}))
	defer server.Close()

	c := NewClient("k", "americas", WithBaseURL(server.URL))
	ids, err := c.GetMatchIDs(context.Background(), "p-1", 420, 3)
	if err != nil {
		t.Fatalf("GetMatchIDs: %v", err)
	}
	if len(ids) != 3 || ids[0] != "NA1_1" {
		t.Errorf("ids = %v", ids)
	}
}

func TestNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient("k", "americas", WithBaseURL(server.URL))
	_, err := c.GetMatchRaw(context.Background(), "NA1_404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRateLimitRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"info":{}}`))
	}))
	defer server.Close()

	c := NewClient("k", "americas", WithBaseURL(server.URL))
	body, err := c.GetTimelineRaw(context.Background(), "NA1_1")
	if err != nil {
		t.Fatalf("GetTimelineRaw: %v", err)
	}
	if string(body) != `{"info":{}}` {
		t.Errorf("body = %s", body)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewClient("k", "americas", WithBaseURL(server.URL))
	if _, err := c.GetMatchRaw(context.Background(), "NA1_1"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want HTTP error", err)
	}
}
