package core

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/native"
)

// Config describes the window and context to create.
type Config struct {
	Title     string `toml:"title"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	MinWidth  int32  `toml:"min_width"`
	MinHeight int32  `toml:"min_height"`
	MaxWidth  int32  `toml:"max_width"`
	MaxHeight int32  `toml:"max_height"`
	TargetFPS int32  `toml:"target_fps"`

	VSync       bool `toml:"vsync"`
	MSAA        bool `toml:"msaa"`
	Fullscreen  bool `toml:"fullscreen"`
	Resizable   bool `toml:"resizable"`
	Undecorated bool `toml:"undecorated"`
	Borderless  bool `toml:"borderless"`
	Hidden      bool `toml:"hidden"`
	Minimized   bool `toml:"minimized"`
	Maximized   bool `toml:"maximized"`
	Topmost     bool `toml:"topmost"`
	HighDPI     bool `toml:"high_dpi"`

	// ExitKey closes the window when pressed; 0 disables it.
	ExitKey int32 `toml:"exit_key"`

	LogLevel   zapcore.Level `toml:"log_level"`
	ClearColor string        `toml:"clear_color"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "groveray",
		Width:      1280,
		Height:     720,
		TargetFPS:  60,
		VSync:      true,
		ExitKey:    256, // escape
		LogLevel:   zapcore.InfoLevel,
		ClearColor: colors.Hex(colors.RayWhite),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.UnableToLoadCause("config", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.UnableToLoadCause("config", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the fields Init depends on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.InvalidArgument("window size must be positive")
	}
	if c.MaxWidth != 0 && c.MaxWidth < c.MinWidth || c.MaxHeight != 0 && c.MaxHeight < c.MinHeight {
		return errors.InvalidArgument("max window size below min size")
	}
	if _, err := colors.ParseHex(c.ClearColor); err != nil {
		return errors.InvalidArgument(err.Error())
	}
	return nil
}

// Background returns ClearColor, falling back to RayWhite when unset or malformed.
func (c Config) Background() native.Color {
	col, err := colors.ParseHex(c.ClearColor)
	if err != nil {
		return colors.RayWhite
	}
	return col
}

// Flags maps the boolean window options onto native config flags.
func (c Config) Flags() native.ConfigFlags {
	var f native.ConfigFlags
	set := func(on bool, flag native.ConfigFlags) {
		if on {
			f |= flag
		}
	}
	set(c.VSync, native.FlagVsyncHint)
	set(c.MSAA, native.FlagMSAA4xHint)
	set(c.Fullscreen, native.FlagFullscreenMode)
	set(c.Resizable, native.FlagWindowResizable)
	set(c.Undecorated, native.FlagWindowUndecorated)
	set(c.Borderless, native.FlagBorderlessWindow)
	set(c.Hidden, native.FlagWindowHidden)
	set(c.Minimized, native.FlagWindowMinimized)
	set(c.Maximized, native.FlagWindowMaximized)
	set(c.Topmost, native.FlagWindowTopmost)
	set(c.HighDPI, native.FlagWindowHighDPI)
	return f
}

type settings struct {
	cfg    Config
	logger *zap.Logger
}

// Option adjusts the context Init creates.
type Option func(*settings)

func WithTitle(title string) Option { return func(s *settings) { s.cfg.Title = title } }

func WithSize(width, height int32) Option {
	return func(s *settings) { s.cfg.Width, s.cfg.Height = width, height }
}

func WithVSync(on bool) Option { return func(s *settings) { s.cfg.VSync = on } }

func WithMSAA(on bool) Option { return func(s *settings) { s.cfg.MSAA = on } }

func WithResizable(on bool) Option { return func(s *settings) { s.cfg.Resizable = on } }

func WithFullscreen(on bool) Option { return func(s *settings) { s.cfg.Fullscreen = on } }

func WithTargetFPS(fps int32) Option { return func(s *settings) { s.cfg.TargetFPS = fps } }

func WithLogLevel(level zapcore.Level) Option { return func(s *settings) { s.cfg.LogLevel = level } }

// WithConfig replaces the whole configuration. Options after it still apply.
func WithConfig(cfg Config) Option { return func(s *settings) { s.cfg = cfg } }

// WithLogger installs l as the process logger instead of the native trace log bridge.
func WithLogger(l *zap.Logger) Option { return func(s *settings) { s.logger = l } }
