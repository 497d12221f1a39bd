package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/cvoutline/model"
)

var (
	fixturePath       = filepath.Join("..", "..", "layoutjson", "testdata", "resume.json")
	invalidLayoutPath = filepath.Join("..", "..", "internal", "schemas", "testdata", "invalid_layout.json")
)

// run executes the CLI in process and returns its stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestOutlineCommand_JSON(t *testing.T) {
	stdout, _, err := run(t, "outline", fixturePath)
	require.NoError(t, err)

	var outline model.Outline
	require.NoError(t, json.Unmarshal([]byte(stdout), &outline))

	assert.Equal(t, "Jane Doe Email: jane@x.com | +1 (555) 123-4567", outline.Title)
	require.Len(t, outline.Headings, 4)
	assert.Equal(t, "Work Experience", outline.Headings[0].Text)
	assert.Equal(t, model.HeadingLevel1, outline.Headings[0].Level)
	assert.Equal(t, 2, outline.Headings[3].Page)
}

func TestOutlineCommand_Markdown(t *testing.T) {
	stdout, _, err := run(t, "outline", "--format", "markdown", fixturePath)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "# Jane Doe"), "unexpected output %q", stdout)
	assert.Contains(t, stdout, "- Work Experience (p. 1)")
	assert.Contains(t, stdout, "- Projects (p. 2)")
}

func TestOutlineCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"unknown format", []string{"outline", "--format", "pdf", fixturePath}, "unknown format"},
		{"missing file", []string{"outline", "missing.json"}, "missing.json"},
		{"no argument", []string{"outline"}, "accepts 1 arg"},
		{"bad log level", []string{"outline", "--log-level", "loud", fixturePath}, "invalid config"},
		{"strict rejects malformed", []string{"outline", "--strict", invalidLayoutPath}, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestOutlineCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cvoutline.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("engine:\n  min_heading_score: 100\n"), 0o644))

	stdout, _, err := run(t, "--config", cfgPath, "outline", fixturePath)
	require.NoError(t, err)

	var outline model.Outline
	require.NoError(t, json.Unmarshal([]byte(stdout), &outline))
	assert.Empty(t, outline.Headings)
}

func TestProfileCommand(t *testing.T) {
	stdout, _, err := run(t, "profile", fixturePath)
	require.NoError(t, err)

	var profile model.CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(stdout), &profile))

	assert.Equal(t, "Jane Doe", profile.PersonalInfo.Name)
	require.NotNil(t, profile.PersonalInfo.Email)
	assert.Equal(t, "jane@x.com", *profile.PersonalInfo.Email)
	assert.Len(t, profile.Experience, 1)
	assert.Len(t, profile.Education, 1)
	assert.Len(t, profile.Skills, 1)
	assert.Contains(t, profile.Other, "Projects")
}

func TestProfileCommand_Sections(t *testing.T) {
	stdout, _, err := run(t, "profile", "--sections", fixturePath)
	require.NoError(t, err)

	var out struct {
		Profile  model.CandidateProfile `json:"profile"`
		Sections []model.Section        `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	require.Len(t, out.Sections, 4)
	assert.Equal(t, model.CategoryExperience, out.Sections[0].Category)
	assert.Equal(t, []string{"designed", "developed", "led"}, out.Sections[0].Highlights.ActionWords)
}

func TestProfileCommand_OutputValidates(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "profile.json")

	_, _, err := run(t, "profile", "--out", outPath, fixturePath)
	require.NoError(t, err)

	stdout, _, err := run(t, "validate", "--schema", "profile", outPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")
}

func TestValidateCommand(t *testing.T) {
	stdout, _, err := run(t, "validate", fixturePath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Validation passed")

	_, stderr, err := run(t, "validate", invalidLayoutPath)
	require.Error(t, err)
	assert.Contains(t, stderr, "Validation failed")

	_, _, err = run(t, "validate", "--schema", "resume", fixturePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")

	_, _, err = run(t, "validate", "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestBatchCommand(t *testing.T) {
	outDir := t.TempDir()

	stdout, _, err := run(t, "batch", "--out", outDir, "--workers", "2", fixturePath, "missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 documents failed")

	summaryPath := strings.TrimSpace(stdout)
	require.FileExists(t, summaryPath)
	assert.FileExists(t, filepath.Join(outDir, "resume.profile.json"))

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)

	var summary batchSummary
	require.NoError(t, json.Unmarshal(data, &summary))

	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, "summary-"+summary.RunID+".json", filepath.Base(summaryPath))
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Documents, 2)
	assert.Equal(t, filepath.Join(outDir, "resume.profile.json"), summary.Documents[0].Output)
	assert.Empty(t, summary.Documents[0].Error)
	assert.NotEmpty(t, summary.Documents[1].Error)
}

func TestBatchCommand_RequiresOut(t *testing.T) {
	_, _, err := run(t, "batch", fixturePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out is required")
}
