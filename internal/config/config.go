package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDigits      = animator.DefaultNumDigits
	DefaultMinDigits   = animator.MinNumDigits
	DefaultMaxDigits   = animator.MaxNumDigits
	DefaultSeparator   = animator.DefaultSeparator
	DefaultDuration    = 3.0
	DefaultPacing      = 0.05
	DefaultMultiplier  = animator.DefaultMultiplier
	DefaultPolicy      = "distinct"
	DefaultResizePause = 1.0
	DefaultTheme       = "cyberpunk"
)

type Config struct {
	Digits         int     `yaml:"digits"`
	MinDigits      int     `yaml:"min_digits"`
	MaxDigits      int     `yaml:"max_digits"`
	Separator      string  `yaml:"separator"`
	Final          string  `yaml:"final,omitempty"`
	Duration       float64 `yaml:"duration"`
	Pacing         float64 `yaml:"pacing"`
	Multiplier     float64 `yaml:"multiplier"`
	Policy         string  `yaml:"policy"`
	ShuffleReveal  bool    `yaml:"shuffle_reveal"`
	PreReveal      bool    `yaml:"pre_reveal"`
	SuppressErrors bool    `yaml:"suppress_errors"`
	ResizePause    float64 `yaml:"resize_pause"`
	Theme          string  `yaml:"theme"`
	LogFile        string  `yaml:"log_file,omitempty"`
	LogLevel       string  `yaml:"log_level,omitempty"`
	Seed           uint64  `yaml:"seed,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Digits:      DefaultDigits,
		MinDigits:   DefaultMinDigits,
		MaxDigits:   DefaultMaxDigits,
		Separator:   DefaultSeparator,
		Duration:    DefaultDuration,
		Pacing:      DefaultPacing,
		Multiplier:  DefaultMultiplier,
		Policy:      DefaultPolicy,
		PreReveal:   true,
		ResizePause: DefaultResizePause,
		Theme:       DefaultTheme,
		LogLevel:    "info",
	}
}

func Load(path string) (*Config, error) {
	return Overlay(path, DefaultConfig())
}

// Overlay reads path on top of a copy of base. Keys missing from the file
// keep their base values.
func Overlay(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.MinDigits <= 0 || c.MaxDigits < c.MinDigits {
		return fmt.Errorf("digit bounds must satisfy 0 < min <= max, got %d..%d", c.MinDigits, c.MaxDigits)
	}
	if c.Digits < c.MinDigits || c.Digits > c.MaxDigits {
		return fmt.Errorf("digits must lie in %d..%d, got %d", c.MinDigits, c.MaxDigits, c.Digits)
	}
	if c.Final != "" {
		if _, err := digits.Parse(c.Final, c.MinDigits, c.MaxDigits); err != nil {
			return fmt.Errorf("final: %w", err)
		}
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %f", c.Duration)
	}
	if c.Pacing <= 0 {
		return fmt.Errorf("pacing must be positive, got %f", c.Pacing)
	}
	if c.Multiplier <= 1 {
		return fmt.Errorf("multiplier must exceed 1, got %f", c.Multiplier)
	}
	if c.ResizePause < 0 {
		return fmt.Errorf("resize_pause must not be negative, got %f", c.ResizePause)
	}
	if _, err := digits.ParsePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}

// ToSettings converts the config into animator settings. An explicit final
// number overrides the digit count.
func (c *Config) ToSettings() (animator.Settings, error) {
	if err := c.Validate(); err != nil {
		return animator.Settings{}, err
	}
	policy, _ := digits.ParsePolicy(c.Policy)

	s := animator.Settings{
		NumDigits:     c.Digits,
		Separator:     c.Separator,
		ShuffleReveal: c.ShuffleReveal,
		PreReveal:     c.PreReveal,
		Policy:        policy,
		BaseDelay:     seconds(c.Pacing),
		Duration:      seconds(c.Duration),
		Multiplier:    c.Multiplier,
	}
	if c.Final != "" {
		s.Final = digits.Sequence(c.Final)
		s.NumDigits = len(c.Final)
	}
	return s, nil
}

func (c *Config) ResizePauseDuration() time.Duration {
	return seconds(c.ResizePause)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
