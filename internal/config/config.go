package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/spf13/viper"

	"github.com/gogpu/starrating"
)

// Config represents the complete starrating configuration
type Config struct {
	Star    StarConfig    `mapstructure:"star"`
	Rating  RatingConfig  `mapstructure:"rating"`
	Render  RenderConfig  `mapstructure:"render"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StarConfig controls the appearance of every star
type StarConfig struct {
	// Color is the outline and fill color as hex (default: "#FFCC00")
	Color string `mapstructure:"color"`
	// BorderWidth is the outline stroke width (default: 1)
	BorderWidth float64 `mapstructure:"border_width"`
	// BorderColor is the container frame color as hex (default: "#000000")
	BorderColor string `mapstructure:"border_color"`
	// ContainerBorderWidth makes the container frame visible (default: 0)
	ContainerBorderWidth float64 `mapstructure:"container_border_width"`
	// Inset shrinks the star geometry inside its bounds (default: 0)
	Inset float64 `mapstructure:"inset"`
	// AnimationDurationMs is the fill transition duration (default: 200)
	AnimationDurationMs int `mapstructure:"animation_duration_ms"`
	// Animation selects the transition: "none", "linear", "ease", "spring"
	Animation string `mapstructure:"animation"`
}

// RatingConfig controls the three-star row
type RatingConfig struct {
	// Spacing is the gap between stars (default: 8)
	Spacing float64 `mapstructure:"spacing"`
	// Width and Height are the canvas size for rendered ratings
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// RenderConfig controls PNG output
type RenderConfig struct {
	// Background is the canvas clear color as hex; empty means transparent
	Background string `mapstructure:"background"`
	// Output is the default PNG path for the render command
	Output string `mapstructure:"output"`
}

// ServerConfig controls the preview server
type ServerConfig struct {
	Addr             string `mapstructure:"addr"`
	ReadTimeoutSecs  int    `mapstructure:"read_timeout_secs"`
	WriteTimeoutSecs int    `mapstructure:"write_timeout_secs"`
	// MaxSize caps the pixel width and height a request may ask for
	MaxSize int `mapstructure:"max_size"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error" (default: "warn")
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Star: StarConfig{
			Color:               "#FFCC00",
			BorderWidth:         starrating.DefaultBorderWidth,
			BorderColor:         "#000000",
			AnimationDurationMs: int(starrating.DefaultAnimationDuration / time.Millisecond),
			Animation:           "linear",
		},
		Rating: RatingConfig{
			Spacing: starrating.DefaultSpacing,
			Width:   316,
			Height:  100,
		},
		Render: RenderConfig{
			Output: "rating.png",
		},
		Server: ServerConfig{
			Addr:             ":8080",
			ReadTimeoutSecs:  10,
			WriteTimeoutSecs: 10,
			MaxSize:          2048,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// SetDefaults registers the defaults with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("star.color", defaults.Star.Color)
	viper.SetDefault("star.border_width", defaults.Star.BorderWidth)
	viper.SetDefault("star.border_color", defaults.Star.BorderColor)
	viper.SetDefault("star.container_border_width", defaults.Star.ContainerBorderWidth)
	viper.SetDefault("star.inset", defaults.Star.Inset)
	viper.SetDefault("star.animation_duration_ms", defaults.Star.AnimationDurationMs)
	viper.SetDefault("star.animation", defaults.Star.Animation)

	viper.SetDefault("rating.spacing", defaults.Rating.Spacing)
	viper.SetDefault("rating.width", defaults.Rating.Width)
	viper.SetDefault("rating.height", defaults.Rating.Height)

	viper.SetDefault("render.background", defaults.Render.Background)
	viper.SetDefault("render.output", defaults.Render.Output)

	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.read_timeout_secs", defaults.Server.ReadTimeoutSecs)
	viper.SetDefault("server.write_timeout_secs", defaults.Server.WriteTimeoutSecs)
	viper.SetDefault("server.max_size", defaults.Server.MaxSize)

	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// AnimationDuration returns the fill transition duration
func (c *StarConfig) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}

// StarOptions converts the star section into widget options. Call Validate
// first: unparsable values fall back to the widget defaults.
func (c *StarConfig) StarOptions() []starrating.StarOption {
	opts := []starrating.StarOption{
		starrating.WithBorderWidth(c.BorderWidth),
		starrating.WithContainerBorderWidth(c.ContainerBorderWidth),
		starrating.WithInset(c.Inset),
		starrating.WithAnimationDuration(c.AnimationDuration()),
	}
	if col, ok := ParseColor(c.Color); ok {
		opts = append(opts, starrating.WithStarColor(col))
	}
	if col, ok := ParseColor(c.BorderColor); ok {
		opts = append(opts, starrating.WithBorderColor(col))
	}
	if a, ok := starrating.AnimatorByName(c.Animation); ok {
		opts = append(opts, starrating.WithAnimator(a))
	}
	return opts
}

// RatingOptions converts the configuration into options for a Rating.
func (c *Config) RatingOptions() []starrating.RatingOption {
	opts := []starrating.RatingOption{
		starrating.WithSpacing(c.Rating.Spacing),
		starrating.WithStarOptions(c.Star.StarOptions()...),
	}
	if col, ok := ParseColor(c.Star.Color); ok {
		opts = append(opts, starrating.WithRatingStarColor(col))
	}
	return opts
}

// BackgroundColor returns the canvas clear color; transparent when unset.
func (c *RenderConfig) BackgroundColor() gg.RGBA {
	if col, ok := ParseColor(c.Background); ok {
		return col
	}
	return gg.Transparent
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "starrating")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".starrating"
	}
	return filepath.Join(home, ".config", "starrating")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
