package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lufia.org/pkg/residency"
)

func run(t *testing.T, cfg Config, args ...string) (string, error) {
	t.Helper()
	a := &app{cfg: cfg, logger: zap.NewNop()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var testConfig = Config{Year: 2024, Continent: residency.Europe}

func TestSummaryCmd(t *testing.T) {
	out, err := run(t, testConfig, "summary",
		"--stay", "Europe,2024-01-01,2024-03-31",
		"--stay", "Asia, 2024-04-01, 2024-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "YEAR 2024")
	assert.Regexp(t, `Asia\s+275`, out)
	assert.Regexp(t, `Europe\s+91`, out)
	assert.Regexp(t, `Total\s+366`, out)
	assert.Less(t, strings.Index(out, "Asia"), strings.Index(out, "Europe"))
}

func TestSummaryCmdYear(t *testing.T) {
	out, err := run(t, testConfig, "summary", "--year", "2023",
		"--stay", "Oceania,2023-06-01,2023-06-01")
	require.NoError(t, err)
	assert.Regexp(t, `Oceania\s+1\n`, out)
	assert.Regexp(t, `Total\s+1\n`, out)
}

func TestSummaryCmdDefaultContinent(t *testing.T) {
	cfg := Config{Year: 2024, Continent: residency.Africa}
	out, err := run(t, cfg, "summary", "--stay", "2024-02-01,2024-02-15")
	require.NoError(t, err)
	assert.Regexp(t, `Africa\s+15`, out)
}

func TestSummaryCmdOverlap(t *testing.T) {
	_, err := run(t, testConfig, "summary",
		"--stay", "Europe,2024-01-01,2024-03-31",
		"--stay", "Africa,2024-02-01,2024-02-15")
	assert.ErrorIs(t, err, residency.ErrOverlappingRange)
	assert.ErrorContains(t, err, "OverlappingRange")
}

func TestSummaryCmdBadStay(t *testing.T) {
	_, err := run(t, testConfig, "summary", "--stay", "Europe")
	assert.ErrorContains(t, err, "want CONTINENT,START,END")

	_, err = run(t, testConfig, "summary", "--stay", "Mars,2024-01-01,2024-01-02")
	assert.ErrorIs(t, err, residency.ErrInvalidContinent)
}

func TestListCmdFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "stays.yaml")
	src := `stays:
  - continent: Asia
    start: "2024-04-01"
    end: "2024-12-31"
  - continent: Europe
    start: "2024-01-01"
    end: "2024-03-31"
`
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))

	out, err := run(t, testConfig, "list", "--file", name, "--stay", "South America,2025-01-01,2025-01-10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "CONTINENT")
	assert.Contains(t, lines[1], "Europe")
	assert.Contains(t, lines[2], "Asia")
	assert.Contains(t, lines[3], "South America")
	assert.Regexp(t, `2025-01-10\s+10$`, lines[3])
}

func TestListCmdFileErr(t *testing.T) {
	name := filepath.Join(t.TempDir(), "stays.yaml")
	src := `stays:
  - continent: Europe
    start: "2024-01-01"
    end: "2023-03-31"
`
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))
	_, err := run(t, testConfig, "list", "--file", name)
	assert.ErrorIs(t, err, residency.ErrInvertedRange)
	assert.ErrorContains(t, err, "stay 1")

	_, err = run(t, testConfig, "list", "--file", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRangesCmd(t *testing.T) {
	args := []string{"ranges",
		"--stay", "Europe,2023-11-01,2024-01-31",
		"--stay", "Asia,2024-02-01,2024-02-10",
	}
	out, err := run(t, testConfig, args...)
	require.NoError(t, err)
	assert.Regexp(t, `(?s)2023\n\s+Europe\s+2023-11-01 \.\. 2023-12-31\n2024\n`, out)
	assert.Regexp(t, `Asia\s+2024-02-01 \.\. 2024-02-10`, out)

	out, err = run(t, testConfig, append(args, "--output", "yaml")...)
	require.NoError(t, err)
	var got map[int]map[string][]rangeYAML
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[int]map[string][]rangeYAML{
		2023: {"Europe": {{Start: "2023-11-01", End: "2023-12-31"}}},
		2024: {
			"Europe": {{Start: "2024-01-01", End: "2024-01-31"}},
			"Asia":   {{Start: "2024-02-01", End: "2024-02-10"}},
		},
	}, got)

	_, err = run(t, testConfig, "ranges", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestContinentsCmd(t *testing.T) {
	out, err := run(t, testConfig, "continents")
	require.NoError(t, err)
	assert.Equal(t, "Africa\nAntarctica\nAsia\nEurope\nNorth America\nOceania\nSouth America\n", out)
}

func TestLoadConfig(t *testing.T) {
	now := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(now)
		require.NoError(t, err)
		assert.Equal(t, 2026, cfg.Year)
		assert.Equal(t, residency.Europe, cfg.Continent)
		assert.False(t, cfg.Verbose)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("CONTINENTTIME_YEAR", "2020")
		t.Setenv("CONTINENTTIME_CONTINENT", "North America")
		t.Setenv("CONTINENTTIME_VERBOSE", "true")
		cfg, err := loadConfig(now)
		require.NoError(t, err)
		assert.Equal(t, 2020, cfg.Year)
		assert.Equal(t, residency.NorthAmerica, cfg.Continent)
		assert.True(t, cfg.Verbose)
	})

	t.Run("bad continent", func(t *testing.T) {
		t.Setenv("CONTINENTTIME_CONTINENT", "Mars")
		_, err := loadConfig(now)
		assert.Error(t, err)
	})
}
