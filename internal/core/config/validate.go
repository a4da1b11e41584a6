package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/redlinehq/redline/internal/core/document"
	"github.com/redlinehq/redline/internal/core/styles"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("theme", c.Theme, themeExists),
		criterio.Run("generation.model", c.Generation.Model, notEmpty),
		c.validateGeneration(),
		c.validateEdit(),
	)
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	return nil
}

func themeExists(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func (c *Config) validateGeneration() error {
	var errs criterio.FieldErrorsBuilder

	if t := c.Generation.Temperature; t < 0 || t > 2 {
		errs = errs.Append("generation.temperature", fmt.Errorf("must be between 0 and 2, got %v", t))
	}

	return errs.ToError()
}

func (c *Config) validateEdit() error {
	var errs criterio.FieldErrorsBuilder

	if c.Edit.MaxAttempts < 0 {
		errs = errs.Append("edit.max_attempts", fmt.Errorf("must not be negative, got %d", c.Edit.MaxAttempts))
	}
	if c.Edit.MinExcerptLen < 0 {
		errs = errs.Append("edit.min_excerpt_len", fmt.Errorf("must not be negative, got %d", c.Edit.MinExcerptLen))
	}

	switch c.Edit.StalePassage {
	case "", document.StaleIgnore, document.StaleError:
	default:
		errs = errs.Append("edit.stale_passage", fmt.Errorf("must be %q or %q, got %q",
			document.StaleIgnore, document.StaleError, c.Edit.StalePassage))
	}

	return errs.ToError()
}
