package config

import (
	"fmt"

	"cityscout/internal/domain"

	"github.com/charmbracelet/log"
)

const (
	maxSuggestionsLimit = 50
	maxDelayMS          = 5000
)

// Validate checks the loaded configuration. Every failure wraps domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Suggest.validate(); err != nil {
		return fmt.Errorf("%w: suggest: %w", domain.ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", domain.ErrInvalidConfig, err)
	}
	return nil
}

func (s SuggestSettings) validate() error {
	if s.MinLength < 0 {
		return fmt.Errorf("min_length must be >= 0 (got %d)", s.MinLength)
	}
	if s.MaxSuggestions < 1 || s.MaxSuggestions > maxSuggestionsLimit {
		return fmt.Errorf("max_suggestions must be between 1 and %d (got %d)", maxSuggestionsLimit, s.MaxSuggestions)
	}
	delays := []struct {
		name  string
		value int
	}{
		{"debounce_delay_ms", s.DebounceDelayMS},
		{"blur_grace_ms", s.BlurGraceMS},
		{"submit_delay_ms", s.SubmitDelayMS},
	}
	for _, d := range delays {
		if d.value < 0 || d.value > maxDelayMS {
			return fmt.Errorf("%s must be between 0 and %d (got %d)", d.name, maxDelayMS, d.value)
		}
	}
	return nil
}
