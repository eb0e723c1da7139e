package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/starrating"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "star.border_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// hexColorRegex accepts RGB, RGBA, RRGGBB and RRGGBBAA with an optional '#'
var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ParseColor parses a hex color. It reports false for anything gg.Hex
// would silently misread.
func ParseColor(s string) (gg.RGBA, bool) {
	if !hexColorRegex.MatchString(s) {
		return gg.RGBA{}, false
	}
	return gg.Hex(s), true
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidAnimations returns the list of valid animation names
func ValidAnimations() []string {
	return []string{"none", "linear", "ease", "spring"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if _, ok := ParseColor(c.Star.Color); !ok {
		errors = append(errors, ValidationError{
			Field:   "star.color",
			Value:   c.Star.Color,
			Message: "must be a hex color like #FFCC00",
		})
	}
	if _, ok := ParseColor(c.Star.BorderColor); !ok {
		errors = append(errors, ValidationError{
			Field:   "star.border_color",
			Value:   c.Star.BorderColor,
			Message: "must be a hex color like #000000",
		})
	}
	if c.Star.BorderWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "star.border_width",
			Value:   c.Star.BorderWidth,
			Message: "must be non-negative",
		})
	}
	if c.Star.ContainerBorderWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "star.container_border_width",
			Value:   c.Star.ContainerBorderWidth,
			Message: "must be non-negative",
		})
	}
	if c.Star.Inset < 0 {
		errors = append(errors, ValidationError{
			Field:   "star.inset",
			Value:   c.Star.Inset,
			Message: "must be non-negative",
		})
	}
	if c.Star.AnimationDurationMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "star.animation_duration_ms",
			Value:   c.Star.AnimationDurationMs,
			Message: "must be non-negative",
		})
	}
	if _, ok := starrating.AnimatorByName(c.Star.Animation); !ok {
		errors = append(errors, ValidationError{
			Field:   "star.animation",
			Value:   c.Star.Animation,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidAnimations(), ", ")),
		})
	}

	if c.Rating.Spacing < 0 {
		errors = append(errors, ValidationError{
			Field:   "rating.spacing",
			Value:   c.Rating.Spacing,
			Message: "must be non-negative",
		})
	}
	if c.Rating.Width <= 0 {
		errors = append(errors, ValidationError{
			Field:   "rating.width",
			Value:   c.Rating.Width,
			Message: "must be positive",
		})
	}
	if c.Rating.Height <= 0 {
		errors = append(errors, ValidationError{
			Field:   "rating.height",
			Value:   c.Rating.Height,
			Message: "must be positive",
		})
	}

	if c.Render.Background != "" {
		if _, ok := ParseColor(c.Render.Background); !ok {
			errors = append(errors, ValidationError{
				Field:   "render.background",
				Value:   c.Render.Background,
				Message: "must be empty or a hex color",
			})
		}
	}

	if c.Server.MaxSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "server.max_size",
			Value:   c.Server.MaxSize,
			Message: "must be positive",
		})
	}

	if !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
