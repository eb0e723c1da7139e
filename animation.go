package starrating

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultAnimationDuration is the fill transition duration used by new stars.
const DefaultAnimationDuration = 200 * time.Millisecond

// Transition produces the intermediate fill values of one animated change.
// The host advances it by calling Step with the time elapsed since the
// previous step; Step reports done once the target value has been reached.
type Transition interface {
	Step(dt time.Duration) (value float64, done bool)
}

// Animator creates a Transition from one fill value to another over d.
// Animators own no timers: they only map elapsed time to values.
type Animator func(from, to float64, d time.Duration) Transition

// Instant jumps straight to the target.
func Instant(_, to float64, _ time.Duration) Transition {
	return instant(to)
}

type instant float64

func (v instant) Step(time.Duration) (float64, bool) { return float64(v), true }

// Linear interpolates at constant speed. It is the default animator.
func Linear(from, to float64, d time.Duration) Transition {
	return &tween{from: from, to: to, duration: d, ease: func(t float64) float64 { return t }}
}

// EaseInOut accelerates out of the start value and decelerates into the
// target (cubic).
func EaseInOut(from, to float64, d time.Duration) Transition {
	return &tween{from: from, to: to, duration: d, ease: easeInOutCubic}
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

type tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     func(float64) float64
}

func (tw *tween) Step(dt time.Duration) (float64, bool) {
	if dt > 0 {
		tw.elapsed += dt
	}
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		return tw.to, true
	}
	t := float64(tw.elapsed) / float64(tw.duration)
	return tw.from + (tw.to-tw.from)*tw.ease(t), false
}

// springSettle is the distance and speed below which a spring counts as
// settled on its target.
const springSettle = 1e-3

// Spring animates with a critically damped harmonica spring whose angular
// frequency is chosen so the motion settles in roughly d. The transition is
// forced onto the target after 4*d in case the spring is still moving.
func Spring(from, to float64, d time.Duration) Transition {
	if d <= 0 {
		return instant(to)
	}
	return &spring{
		pos:       from,
		target:    to,
		frequency: 5 / d.Seconds(),
		limit:     4 * d,
	}
}

type spring struct {
	pos, vel  float64
	target    float64
	frequency float64
	elapsed   time.Duration
	limit     time.Duration
}

func (s *spring) Step(dt time.Duration) (float64, bool) {
	if dt <= 0 {
		return s.pos, false
	}
	s.elapsed += dt
	h := harmonica.NewSpring(dt.Seconds(), s.frequency, 1.0)
	s.pos, s.vel = h.Update(s.pos, s.vel, s.target)
	if s.elapsed >= s.limit ||
		(math.Abs(s.pos-s.target) < springSettle && math.Abs(s.vel) < springSettle) {
		s.pos, s.vel = s.target, 0
		return s.target, true
	}
	return s.pos, false
}

// AnimatorByName resolves the animator names accepted in configuration:
// "none", "linear", "ease" and "spring".
func AnimatorByName(name string) (Animator, bool) {
	switch name {
	case "none", "instant":
		return Instant, true
	case "", "linear":
		return Linear, true
	case "ease", "ease-in-out":
		return EaseInOut, true
	case "spring":
		return Spring, true
	}
	return nil, false
}
