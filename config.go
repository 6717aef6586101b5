package nav

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned (wrapped) when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid nav config")

// Config holds navigation feature gates, timings and the few style metrics
// the navigation code depends on. Durations are in seconds.
type Config struct {
	// NavEnableKeyboard enables arrow/Space/Enter/Escape navigation.
	// Tab and Ctrl+Tab work regardless of this flag.
	NavEnableKeyboard bool `toml:"nav_enable_keyboard"`
	// NavEnableGamepad enables gamepad navigation when a pad is present.
	NavEnableGamepad bool `toml:"nav_enable_gamepad"`
	// NavEnableSetMousePos asks the application to move the mouse cursor
	// onto the focused item after keyboard/gamepad moves.
	NavEnableSetMousePos bool `toml:"nav_enable_set_mouse_pos"`
	// DebugChecks turns precondition violations into panics.
	DebugChecks bool `toml:"debug_checks"`

	KeyRepeatDelay float32 `toml:"key_repeat_delay"`
	KeyRepeatRate  float32 `toml:"key_repeat_rate"`
	// Directional moves repeat slightly faster than text keys.
	NavMoveRepeatDelayScale float32 `toml:"nav_move_repeat_delay_scale"`
	NavMoveRepeatRateScale  float32 `toml:"nav_move_repeat_rate_scale"`

	// WindowingHighlightDelay is how long Ctrl+Tab/Menu must be held
	// before the target highlight starts fading in.
	WindowingHighlightDelay float32 `toml:"windowing_highlight_delay"`
	// WindowingListDelay is how long before the window list appears.
	WindowingListDelay float32 `toml:"windowing_list_delay"`
	// WindowingMoveSpeed is the move-via-keys speed in pixels per second.
	WindowingMoveSpeed float32 `toml:"windowing_move_speed"`

	FontSize     float32 `toml:"font_size"`
	ItemSpacing  Vec2    `toml:"item_spacing"`
	DisplaySize  Vec2    `toml:"display_size"`
	CharWidth    float32 `toml:"char_width"`
	WindowingPad Vec2    `toml:"windowing_padding"`
}

// DefaultConfig returns the default navigation configuration.
func DefaultConfig() Config {
	return Config{
		NavEnableKeyboard:       true,
		NavEnableGamepad:        true,
		KeyRepeatDelay:          KeyRepeatDelay,
		KeyRepeatRate:           KeyRepeatInterval,
		NavMoveRepeatDelayScale: 0.72,
		NavMoveRepeatRateScale:  0.80,
		WindowingHighlightDelay: 0.20,
		WindowingListDelay:      0.15,
		WindowingMoveSpeed:      800,
		FontSize:                13,
		ItemSpacing:             Vec2{X: 8, Y: 4},
		DisplaySize:             Vec2{X: 1280, Y: 720},
		CharWidth:               7,
		WindowingPad:            Vec2{X: 16, Y: 16},
	}
}

// Validate checks that every value is in range.
func (c Config) Validate() error {
	switch {
	case c.KeyRepeatDelay < 0:
		return fmt.Errorf("%w: key_repeat_delay must be >= 0, got %v", ErrInvalidConfig, c.KeyRepeatDelay)
	case c.KeyRepeatRate < 0:
		return fmt.Errorf("%w: key_repeat_rate must be >= 0, got %v", ErrInvalidConfig, c.KeyRepeatRate)
	case c.NavMoveRepeatDelayScale <= 0 || c.NavMoveRepeatRateScale <= 0:
		return fmt.Errorf("%w: nav move repeat scales must be > 0", ErrInvalidConfig)
	case c.WindowingHighlightDelay < 0 || c.WindowingListDelay < 0:
		return fmt.Errorf("%w: windowing delays must be >= 0", ErrInvalidConfig)
	case c.FontSize <= 0:
		return fmt.Errorf("%w: font_size must be > 0, got %v", ErrInvalidConfig, c.FontSize)
	case c.DisplaySize.X <= 0 || c.DisplaySize.Y <= 0:
		return fmt.Errorf("%w: display_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// ParseConfig decodes TOML on top of DefaultConfig. Unknown keys are
// rejected so typos don't silently fall back to defaults.
func ParseConfig(data []byte) (Config, error) {
	return ParseConfigOnto(DefaultConfig(), data)
}

// ParseConfigOnto parses TOML over base. Keys missing from data keep the
// base value.
func ParseConfigOnto(base Config, data []byte) (Config, error) {
	cfg := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode nav config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	return LoadConfigOnto(DefaultConfig(), path)
}

// LoadConfigOnto reads a TOML config file over base.
func LoadConfigOnto(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read nav config: %w", err)
	}
	return ParseConfigOnto(base, data)
}

// Encode renders the config as TOML, e.g. to write a starter file.
func (c Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode nav config: %w", err)
	}
	return data, nil
}

// navMoveRepeat returns the delay/rate used by directional moves.
func (c Config) navMoveRepeat() (delay, rate float32) {
	return c.KeyRepeatDelay * c.NavMoveRepeatDelayScale, c.KeyRepeatRate * c.NavMoveRepeatRateScale
}
