package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/cvoutline/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cvoutline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, layout.DefaultConfig(), cfg.Engine)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 300, cfg.OCR.DPI)
	assert.Equal(t, 3, cfg.OCR.PageSegMode)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
strict: true
engine:
  min_heading_score: 4.5
  title_page_limit: 1
  repeat:
    min_pages: 3
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Strict)
	assert.Equal(t, 4.5, cfg.Engine.MinHeadingScore)
	assert.Equal(t, 1, cfg.Engine.TitlePageLimit)
	assert.Equal(t, 3, cfg.Engine.Repeat.MinPages)
	assert.Equal(t, "json", cfg.Log.Format)

	// Untouched fields keep their defaults
	assert.Equal(t, 0.15, cfg.Engine.HeaderThreshold)
	assert.Equal(t, 8, cfg.Engine.Repeat.MaxWords)
	assert.Equal(t, 2.5, cfg.Engine.Heading.Bold)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "engine:\n  header_threshold: 0.1\n")
	t.Setenv("CVOUTLINE_HEADER_THRESHOLD", "0.2")
	t.Setenv("CVOUTLINE_WORKERS", "4")
	t.Setenv("CVOUTLINE_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Engine.HeaderThreshold)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad yaml", "engine: [", "parsing config"},
		{"footer above header", "engine:\n  header_threshold: 0.9\n  footer_threshold: 0.5\n", "footer_threshold"},
		{"threshold out of range", "engine:\n  header_threshold: 1.5\n", "header_threshold"},
		{"unknown log level", "log:\n  level: loud\n", "log.level"},
		{"too many levels", "engine:\n  max_levels: 4\n", "max_levels"},
		{"dpi", "ocr:\n  dpi: 10\n", "ocr.dpi"},
		{"psm", "ocr:\n  psm: 14\n", "ocr.psm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CVOUTLINE_FOOTER_THRESHOLD":    "0.8",
		"CVOUTLINE_MIN_BODY_TEXT_WORDS": "5",
		"CVOUTLINE_STRICT":              "true",
		"CVOUTLINE_OCR_LANGUAGE":        "deu",
		"CVOUTLINE_OCR_PSM":             "6",
		"CVOUTLINE_MAX_LEVELS":          "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(&cfg, lookup))

	assert.Equal(t, 0.8, cfg.Engine.FooterThreshold)
	assert.Equal(t, 5, cfg.Engine.MinBodyTextWords)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "deu", cfg.OCR.Language)
	assert.Equal(t, 6, cfg.OCR.PageSegMode)
	assert.Equal(t, 3, cfg.Engine.MaxLevels, "empty values are ignored")
}

func TestApplyEnv_BadValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "CVOUTLINE_TITLE_PAGE_LIMIT" {
			return "two", true
		}
		return "", false
	}

	cfg := Default()
	err := ApplyEnv(&cfg, lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CVOUTLINE_TITLE_PAGE_LIMIT")
}

func TestEnvNames(t *testing.T) {
	names := EnvNames()
	assert.Contains(t, names, "CVOUTLINE_HEADER_THRESHOLD")
	assert.Contains(t, names, "CVOUTLINE_TITLE_PAGE_LIMIT")
	for _, n := range names {
		assert.Regexp(t, `^CVOUTLINE_[A-Z_]+$`, n)
	}
}
