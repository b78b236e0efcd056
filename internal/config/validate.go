package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyOutputPath indicates a missing output document path
	ErrEmptyOutputPath = errors.New("empty output path")

	// ErrEmptyMarker indicates a blank sentinel marker
	ErrEmptyMarker = errors.New("empty sentinel marker")

	// ErrMarkersEqual indicates identical start and end markers
	ErrMarkersEqual = errors.New("start and end markers must differ")

	// ErrEmptyComposePath indicates a missing compose file path
	ErrEmptyComposePath = errors.New("empty compose path")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Output.Path) == "" {
		errs = append(errs, ErrEmptyOutputPath)
	}
	if strings.TrimSpace(cfg.Output.StartMarker) == "" || strings.TrimSpace(cfg.Output.EndMarker) == "" {
		errs = append(errs, ErrEmptyMarker)
	} else if cfg.Output.StartMarker == cfg.Output.EndMarker {
		errs = append(errs, ErrMarkersEqual)
	}
	if strings.TrimSpace(cfg.Compose.Path) == "" {
		errs = append(errs, ErrEmptyComposePath)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
