package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/internal/config"
	"github.com/gogpu/starrating/internal/snapshot"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fillsResponse struct {
	Rating float64   `json:"rating"`
	Fills  []float64 `json:"fills"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStar(w http.ResponseWriter, r *http.Request) {
	cfg := *s.cfg

	fill, err := floatParam(r, "fill", 1)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	size, err := s.sizeParam(r, "size", cfg.Rating.Height)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if err := colorParam(r, &cfg.Star.Color); err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := snapshot.Star(&buf, &cfg, fill, size, size); err != nil {
		starrating.Logger().Error("server: render star", "err", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render star")
		return
	}
	s.respondPNG(w, buf.Bytes())
}

func (s *Server) handleRating(w http.ResponseWriter, r *http.Request) {
	cfg := *s.cfg

	rating, err := floatParam(r, "rating", 0)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	width, err := s.sizeParam(r, "width", cfg.Rating.Width)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	height, err := s.sizeParam(r, "height", cfg.Rating.Height)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if cfg.Rating.Spacing, err = floatParam(r, "spacing", cfg.Rating.Spacing); err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if err := colorParam(r, &cfg.Star.Color); err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	var buf bytes.Buffer
	if err := snapshot.Rating(&buf, &cfg, rating, width, height); err != nil {
		starrating.Logger().Error("server: render rating", "err", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render rating")
		return
	}
	s.respondPNG(w, buf.Bytes())
}

func (s *Server) handleFills(w http.ResponseWriter, r *http.Request) {
	rating, err := floatParam(r, "rating", 0)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	rt := starrating.NewRating(starrating.WithStarOptions(starrating.WithAnimator(starrating.Instant)))
	rt.SetRating(rating)
	s.respondJSON(w, http.StatusOK, fillsResponse{
		Rating: rt.Rating(),
		Fills:  rt.Fills(),
	})
}

// floatParam parses a finite float query parameter, returning def when the
// parameter is absent.
func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number", name)
	}
	return v, nil
}

// sizeParam parses a pixel dimension in [1, server.max_size].
func (s *Server) sizeParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > s.cfg.Server.MaxSize {
		return 0, fmt.Errorf("%s must be an integer between 1 and %d", name, s.cfg.Server.MaxSize)
	}
	return v, nil
}

// colorParam overrides dst with the "color" query parameter when present.
func colorParam(r *http.Request, dst *string) error {
	raw := r.URL.Query().Get("color")
	if raw == "" {
		return nil
	}
	if _, ok := config.ParseColor(raw); !ok {
		return fmt.Errorf("color must be a hex color like FFCC00")
	}
	*dst = raw
	return nil
}

func (s *Server) respondPNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		starrating.Logger().Warn("server: write response", "err", err)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			starrating.Logger().Warn("server: encode response", "err", err)
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
