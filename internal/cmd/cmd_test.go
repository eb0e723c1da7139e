package cmd

import (
	"bytes"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (output string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(func() {
		// Flag values and viper state persist across Execute calls.
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		root.PersistentFlags().VisitAll(reset)
		for _, c := range root.Commands() {
			c.Flags().VisitAll(reset)
		}
		viper.Reset()
		_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))
		_ = viper.BindPFlag("logging.level", root.PersistentFlags().Lookup("log-level"))
		_ = viper.BindPFlag("render.output", renderCmd.Flags().Lookup("out"))
		_ = viper.BindPFlag("rating.width", renderCmd.Flags().Lookup("width"))
		_ = viper.BindPFlag("rating.height", renderCmd.Flags().Lookup("height"))
		_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	})

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "starrating" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "starrating")
	}

	expectedCmds := []string{"render", "fills", "preview", "serve"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestRenderRating(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rating.png")

	output, err := executeCommand(t, rootCmd, "render", "--rating", "0.5", "--out", out, "--width", "200", "--height", "64")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "wrote "+out) {
		t.Errorf("output = %q, want wrote message", output)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 64 {
		t.Errorf("bounds = %v, want 200x64", b)
	}
}

func TestRenderStar(t *testing.T) {
	out := filepath.Join(t.TempDir(), "star.png")

	output, err := executeCommand(t, rootCmd, "render", "--fill", "0.25", "--height", "48", "--out", out)
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, output)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("bounds = %v, want 48x48", b)
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.png")
	t.Setenv("STARRATING_STAR_COLOR", "not-a-color")

	_, err := executeCommand(t, rootCmd, "render", "--out", out)
	if err == nil {
		t.Fatal("expected error for invalid star color")
	}
	if !strings.Contains(err.Error(), "star.color") {
		t.Errorf("error = %v, want star.color", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file written despite invalid config")
	}
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	out := filepath.Join(dir, "from-config.png")
	content := "rating:\n  width: 90\n  height: 30\nrender:\n  output: " + out + "\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := executeCommand(t, rootCmd, "--config", cfgPath, "render", "--rating", "1")
	if err != nil {
		t.Fatalf("render failed: %v\n%s", err, output)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 90 || b.Dy() != 30 {
		t.Errorf("bounds = %v, want 90x30", b)
	}
}

func TestFills(t *testing.T) {
	output, err := executeCommand(t, rootCmd, "fills", "--rating", "0.5")
	if err != nil {
		t.Fatalf("fills failed: %v", err)
	}
	for _, want := range []string{"rating 0.5", "star 1  100%", "star 2  50%", "star 3  0%"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestFillsLocalized(t *testing.T) {
	output, err := executeCommand(t, rootCmd, "fills", "--rating", "0.25", "--lang", "de")
	if err != nil {
		t.Fatalf("fills failed: %v", err)
	}
	if !strings.Contains(output, "rating 0,25") {
		t.Errorf("output = %q, want German decimal comma", output)
	}
}

func TestFillsBadLang(t *testing.T) {
	if _, err := executeCommand(t, rootCmd, "fills", "--lang", "!!"); err == nil {
		t.Error("expected error for invalid language tag")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		l := newLogger(tt.level)
		if !l.Enabled(t.Context(), tt.want) {
			t.Errorf("newLogger(%q) disables %v", tt.level, tt.want)
		}
		if l.Enabled(t.Context(), tt.want-1) {
			t.Errorf("newLogger(%q) enables levels below %v", tt.level, tt.want)
		}
	}
}

func TestConfigFlagNamesDefaultFile(t *testing.T) {
	usage := rootCmd.PersistentFlags().Lookup("config").Usage
	if !strings.Contains(usage, filepath.Join("starrating", "config.yaml")) {
		t.Errorf("--config usage = %q, want the default config path", usage)
	}
}
