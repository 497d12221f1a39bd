package config

import (
	"fmt"
	"strconv"
)

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

type envBinding struct {
	name string
	set  func(c *Config, v string) error
}

func floatVar(dst func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst(c) = f
		return nil
	}
}

func intVar(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst(c) = n
		return nil
	}
}

func stringVar(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, v string) error {
		*dst(c) = v
		return nil
	}
}

var envBindings = []envBinding{
	{"HEADER_THRESHOLD", floatVar(func(c *Config) *float64 { return &c.Engine.HeaderThreshold })},
	{"FOOTER_THRESHOLD", floatVar(func(c *Config) *float64 { return &c.Engine.FooterThreshold })},
	{"MIN_HEADING_SCORE", floatVar(func(c *Config) *float64 { return &c.Engine.MinHeadingScore })},
	{"FONT_SIZE_RATIO", floatVar(func(c *Config) *float64 { return &c.Engine.FontSizeRatio })},
	{"MIN_BODY_TEXT_WORDS", intVar(func(c *Config) *int { return &c.Engine.MinBodyTextWords })},
	{"TITLE_PAGE_LIMIT", intVar(func(c *Config) *int { return &c.Engine.TitlePageLimit })},
	{"DEFAULT_BODY_TEXT_SIZE", floatVar(func(c *Config) *float64 { return &c.Engine.DefaultBodyTextSize })},
	{"MAX_LEVELS", intVar(func(c *Config) *int { return &c.Engine.MaxLevels })},
	{"STRICT", func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Strict = b
		return nil
	}},
	{"LOG_LEVEL", stringVar(func(c *Config) *string { return &c.Log.Level })},
	{"LOG_FORMAT", stringVar(func(c *Config) *string { return &c.Log.Format })},
	{"OCR_LANGUAGE", stringVar(func(c *Config) *string { return &c.OCR.Language })},
	{"OCR_DPI", intVar(func(c *Config) *int { return &c.OCR.DPI })},
	{"OCR_PSM", intVar(func(c *Config) *int { return &c.OCR.PageSegMode })},
	{"WORKERS", intVar(func(c *Config) *int { return &c.Batch.Workers })},
}

// EnvNames returns every recognised environment variable
func EnvNames() []string {
	names := make([]string, len(envBindings))
	for i, b := range envBindings {
		names[i] = EnvPrefix + b.name
	}
	return names
}

// ApplyEnv overrides fields from CVOUTLINE_* variables found by lookup
func ApplyEnv(c *Config, lookup LookupFunc) error {
	for _, b := range envBindings {
		key := EnvPrefix + b.name
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("parsing %s=%q: %w", key, v, err)
		}
	}
	return nil
}
