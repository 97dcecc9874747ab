package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hotel_dashboard/internal/adapters/remote"
	"hotel_dashboard/internal/domain"
)

var fixture = []domain.Hotel{
	{ID: 1, Name: "Hotel B1", City: "Cork", Price: 150, Score: 8.2, Lat: 53.3, Lng: -6.2},
	{ID: 2, Name: "Hotel C1", City: "Sligo", Price: 220, Score: 7.4, Lat: 53.9, Lng: -6.5},
}

func TestClient_LoadHotels_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(503)
		default:
			if r.Header.Get("X-API-Key") != "test-key" {
				w.WriteHeader(401)
				return
			}
			_ = json.NewEncoder(w).Encode(fixture)
		}
	}))
	defer ts.Close()

	cl, err := remote.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.LoadHotels(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[1].City != "Sligo" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_LoadHotels_FallsBackToDump(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotels.json", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"hotels": fixture})
	})
	ts := httptest.NewServer(mux) // /v1/hotels/export answers 404
	defer ts.Close()

	cl, _ := remote.New(ts.URL+"/", "", 100)
	got, err := cl.LoadHotels(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_LoadHotels_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := remote.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.LoadHotels(ctx)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestNew_RequiresBase(t *testing.T) {
	if _, err := remote.New(" ", "k", 1); err == nil {
		t.Fatalf("expected error for empty base URL")
	}
}

func TestClient_LoadHotels_RejectedCredentialsAreFinal(t *testing.T) {
	for _, code := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		var hits int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			w.WriteHeader(code)
		}))

		cl, _ := remote.New(ts.URL, "wrong", 100)
		_, err := cl.LoadHotels(context.Background())
		ts.Close()

		if !errors.Is(err, remote.ErrRejected) {
			t.Fatalf("%d: expected ErrRejected, got %v", code, err)
		}
		if n := atomic.LoadInt32(&hits); n != 1 {
			t.Fatalf("%d: credentials errors must not be retried, got %d calls", code, n)
		}
	}
}

func TestClient_LoadHotels_GivesUpAfterRetries(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	cl, _ := remote.New(ts.URL, "", 100)
	if _, err := cl.LoadHotels(context.Background()); err == nil {
		t.Fatalf("expected error after exhausting retries")
	}
	if n := atomic.LoadInt32(&hits); n != 4 {
		t.Fatalf("expected 4 attempts, got %d", n)
	}
}
