// Package tui is an interactive terminal preview of the rating widget.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"github.com/gogpu/starrating"
	"github.com/gogpu/starrating/integration/starcanvas"
	"github.com/gogpu/starrating/internal/config"
	"github.com/gogpu/starrating/internal/termview"
)

const (
	// FrameInterval is the animation tick period (about 60 FPS).
	FrameInterval = 16 * time.Millisecond

	// Step is how far one arrow key press moves the rating.
	Step = 0.05

	// pixelsPerCell is the supersampling factor per terminal half-cell.
	pixelsPerCell = 4

	// chromeRows is the number of lines used by the header and help.
	chromeRows = 4

	defaultCols = 60
	defaultRows = 8
)

// FrameMsg advances running transitions.
type FrameMsg time.Time

// Model is the bubbletea model hosting a Rating on a headless canvas.
type Model struct {
	rating     *starrating.Rating
	canvas     *starcanvas.Canvas
	background gg.RGBA

	colorIdx int
	cols     int
	rows     int

	lastFrame time.Time
	view      string
	viewAt    int // canvas redraw count the cached view belongs to
	err       error
	quitting  bool
}

// New creates a preview model from cfg.
func New(cfg *config.Config) (*Model, error) {
	r := starrating.NewRating(cfg.RatingOptions()...)
	bg := cfg.Render.BackgroundColor()
	if bg.A == 0 {
		bg = gg.Black
	}

	m := &Model{
		rating:     r,
		background: bg,
		cols:       defaultCols,
		rows:       defaultRows,
		viewAt:     -1,
	}
	for i, c := range palette {
		if c == r.StarColor() {
			m.colorIdx = i
		}
	}

	w, h := m.canvasSize()
	cv, err := starcanvas.New(nil, w, h, r, starcanvas.WithBackground(bg))
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	m.canvas = cv
	return m, nil
}

// Rating returns the hosted widget.
func (m *Model) Rating() *starrating.Rating {
	return m.rating
}

// Close releases the canvas.
func (m *Model) Close() error {
	return m.canvas.Close()
}

func (m *Model) canvasSize() (int, int) {
	return m.cols * pixelsPerCell, m.rows * 2 * pixelsPerCell
}

func frame() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frame()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cols = max(1, msg.Width)
		m.rows = max(1, msg.Height-chromeRows)
		w, h := m.canvasSize()
		if err := m.canvas.Resize(w, h); err != nil {
			m.err = err
		}
		return m, nil

	case FrameMsg:
		now := time.Time(msg)
		dt := FrameInterval
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now
		m.canvas.Advance(dt)
		return m, frame()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "right", "l", "+":
		m.setRating(m.rating.Rating() + Step)
	case "left", "h", "-":
		m.setRating(m.rating.Rating() - Step)
	case "0", "1", "2", "3":
		m.rating.SetRating(float64(msg.String()[0]-'0') / starrating.NumStars)
	case "c":
		m.colorIdx = (m.colorIdx + 1) % len(palette)
		m.rating.SetStarColor(palette[m.colorIdx])
	}
	return m, nil
}

// setRating rounds away float drift from repeated steps.
func (m *Model) setRating(v float64) {
	m.rating.SetRating(math.Round(v*100) / 100)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("starrating"))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", m.rating.Rating())))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(fmt.Sprintf("error: %v", m.err))
	} else {
		sb.WriteString(m.stars())
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("←/→ rate • 0-3 jump • c color • q quit"))
	return sb.String()
}

// stars renders the canvas, reusing the last output when nothing changed.
func (m *Model) stars() string {
	img, err := m.canvas.Image()
	if err != nil {
		m.err = err
		return ""
	}
	if n := m.canvas.Redraws(); n != m.viewAt {
		m.view = termview.Render(img, m.cols, m.rows, m.background)
		m.viewAt = n
	}
	return m.view
}
