package server

import (
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gogpu/starrating/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.MaxSize = 512
	return New(cfg)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestStarPNG(t *testing.T) {
	rec := get(t, newTestServer(t), "/star.png?fill=0.5&size=64&color=%2300FF00")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("bounds = %v, want 64x64", b)
	}
}

func TestRatingPNG(t *testing.T) {
	rec := get(t, newTestServer(t), "/rating.png?rating=0.5&width=200&height=60&spacing=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 60 {
		t.Errorf("bounds = %v, want 200x60", b)
	}
}

func TestRatingPNGDefaults(t *testing.T) {
	rec := get(t, newTestServer(t), "/rating.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 316 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want configured 316x100", b)
	}
}

func TestFills(t *testing.T) {
	tests := []struct {
		query  string
		rating float64
		fills  []float64
	}{
		{"", 0, []float64{0, 0, 0}},
		{"?rating=0.5", 0.5, []float64{1, 0.5, 0}},
		{"?rating=1", 1, []float64{1, 1, 1}},
		{"?rating=7", 1, []float64{1, 1, 1}},
		{"?rating=-2", 0, []float64{0, 0, 0}},
	}
	s := newTestServer(t)
	for _, tt := range tests {
		rec := get(t, s, "/fills"+tt.query)
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: status = %d", tt.query, rec.Code)
		}
		var body fillsResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%q: decode: %v", tt.query, err)
		}
		if body.Rating != tt.rating {
			t.Errorf("%q: rating = %v, want %v", tt.query, body.Rating, tt.rating)
		}
		if len(body.Fills) != len(tt.fills) {
			t.Fatalf("%q: fills = %v, want %v", tt.query, body.Fills, tt.fills)
		}
		for i := range tt.fills {
			if body.Fills[i] != tt.fills[i] {
				t.Errorf("%q: fills = %v, want %v", tt.query, body.Fills, tt.fills)
				break
			}
		}
	}
}

func TestBadRequests(t *testing.T) {
	targets := []string{
		"/star.png?fill=abc",
		"/star.png?fill=NaN",
		"/star.png?size=0",
		"/star.png?size=513",
		"/star.png?size=1.5",
		"/star.png?color=yellow",
		"/rating.png?rating=x",
		"/rating.png?width=-1",
		"/rating.png?height=99999",
		"/rating.png?spacing=Inf",
		"/fills?rating=half",
	}
	s := newTestServer(t)
	for _, target := range targets {
		rec := get(t, s, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
			continue
		}
		var body errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Errorf("%s: decode: %v", target, err)
			continue
		}
		if body.Code != "BAD_REQUEST" || body.Message == "" {
			t.Errorf("%s: body = %+v", target, body)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := get(t, newTestServer(t), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	s := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	if err := newTestServer(t).Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
