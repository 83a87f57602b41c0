package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all swipedeck configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Animation  AnimationConfig  `toml:"animation"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	RememberLastPage bool `toml:"remember_last_page"`

	// OutsideOffset is the distance, in columns, that the off-strip
	// placeholder tabs park beyond the strip edges. Negative means one full
	// strip width.
	OutsideOffset int `toml:"outside_offset"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// AnimationConfig shapes the page-change spring.
type AnimationConfig struct {
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			RememberLastPage: true,
			OutsideOffset:    -1,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Animation: SmoothAnimation(),
	}
}

// SmoothAnimation is the default critically damped page-change spring.
func SmoothAnimation() AnimationConfig {
	return AnimationConfig{FPS: 60, Frequency: 7.0, Damping: 1.0}
}

// SnappyAnimation is a faster, slightly underdamped spring.
func SnappyAnimation() AnimationConfig {
	return AnimationConfig{FPS: 60, Frequency: 10.0, Damping: 0.9}
}

// Normalize fills zero or out-of-range animation values with the smooth
// preset so a hand-edited config can't freeze the carousel.
func (c *Config) Normalize() {
	smooth := SmoothAnimation()
	if c.Animation.FPS <= 0 {
		c.Animation.FPS = smooth.FPS
	}
	if c.Animation.Frequency <= 0 {
		c.Animation.Frequency = smooth.Frequency
	}
	if c.Animation.Damping <= 0 {
		c.Animation.Damping = smooth.Damping
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "swipedeck")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "swipedeck")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
