package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"econhub/app"
	"econhub/domain/worldview"
	"econhub/internal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func decodeWorldview(t *testing.T, out string) worldview.Worldview {
	t.Helper()
	var w worldview.Worldview
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	require.Len(t, w, 10)
	return w
}

func TestLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	c := &cli{}
	c.initLogger()
	assert.Equal(t, internal.LogLevelWarn, c.logger.GetLevel())

	t.Setenv("LOG_LEVEL", "info")
	c.initLogger()
	assert.Equal(t, internal.LogLevelInfo, c.logger.GetLevel())

	c.verbose = true
	c.initLogger()
	assert.Equal(t, internal.LogLevelDebug, c.logger.GetLevel())
}

func TestSampleCommand(t *testing.T) {
	out, err := execute(t, "", "sample")
	require.NoError(t, err)

	w := decodeWorldview(t, out)
	assert.Equal(t, sampleInput, w.Choices())
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"factor\": \"S\""))
}

func TestWorldviewArgsOverrideJSON(t *testing.T) {
	out, err := execute(t, "", "worldview",
		"--json", `{"S":"Caste system","T":"Post-quantum mesh"}`,
		"T=Bronze age", "R=Chrono-anomalies")
	require.NoError(t, err)

	w := decodeWorldview(t, out)
	assert.Equal(t, "Caste system", w[0].Choice)
	assert.Equal(t, "Bronze age", w[2].Choice)
	assert.Equal(t, "Chrono-anomalies", w[8].Choice)
}

func TestWorldviewFromStdin(t *testing.T) {
	out, err := execute(t, `{"D":"Intermittent identity roles"}`, "worldview", "--input", "-")
	require.NoError(t, err)

	w := decodeWorldview(t, out)
	assert.Equal(t, "Intermittent identity roles", w[9].Choice)
}

func TestWorldviewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"G":"Anarcho-syndicalism","C":42}`), 0o600))

	out, err := execute(t, "", "worldview", "--input", path)
	require.NoError(t, err)

	w := decodeWorldview(t, out)
	assert.Equal(t, "Anarcho-syndicalism", w[3].Choice)
	assert.Equal(t, "Oral epic preservation", w[4].Choice)
}

func TestWorldviewMarkdown(t *testing.T) {
	out, err := execute(t, "", "worldview", "S=Caste system", "--format", "markdown")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Worldview\n"))
	assert.Contains(t, out, "| S (Society) | Caste system |")
}

func TestWorldviewFreeform(t *testing.T) {
	out, err := execute(t, "", "worldview", "--freeform", "S=Floating monasteries", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Floating monasteries")
	assert.Contains(t, out, "unspecified")

	_, err = execute(t, "", "worldview", "--freeform", "--format", "markdown")
	assert.Error(t, err)
}

func TestWorldviewRejectsBadInput(t *testing.T) {
	_, err := execute(t, "", "worldview", "S")
	assert.ErrorContains(t, err, "expected FACTOR=VALUE")

	_, err = execute(t, "", "worldview", "--json", "{}", "--input", "-")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = execute(t, "", "worldview", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "not found")

	_, err = execute(t, "", "worldview", "--format", "toml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestOptionsCommand(t *testing.T) {
	out, err := execute(t, "", "options")
	require.NoError(t, err)

	var factors []app.FactorDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &factors))
	require.Len(t, factors, 10)
	assert.Equal(t, "D", string(factors[9].ID))

	out, err = execute(t, "", "options", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- id: S\n  name: Society\n")
}

func TestShareURLCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"--origin", "https://site.com", "--id", "abc123"}, "https://site.com/story/abc123"},
		{[]string{"--origin", "https://site.com/", "--id", "abc123"}, "https://site.com/story/abc123"},
		{[]string{"--origin", "https://x.y", "--id", "id with space"}, "https://x.y/story/id%20with%20space"},
		{[]string{"--id", "raw"}, "/story/raw"},
		{nil, "/story/"},
		{[]string{"--origin", "https://site.com:443/library?x=1", "--href", "--id", "z"}, "https://site.com/story/z"},
	}
	for _, tc := range cases {
		out, err := execute(t, "", append([]string{"share-url"}, tc.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tc.want+"\n", out, "%v", tc.args)
	}
}

func clearForecastEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "UI_PORT", "GIN_MODE", "SHUTDOWN_TIMEOUT",
		"FORECAST_STEPS", "FORECAST_SAMPLES", "FORECAST_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestForecastDemo(t *testing.T) {
	clearForecastEnv(t)
	t.Setenv("FORECAST_SAMPLES", "200")

	out, err := execute(t, "", "forecast", "--query", "gdp", "--steps", "4", "--format", "json")
	require.NoError(t, err)

	var res app.ForecastResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Demo)
	assert.Len(t, res.Forecast, 4)

	text, err := execute(t, "", "forecast", "--query", "gdp", "--steps", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Query: gdp\nForecast next value: "))
	assert.Contains(t, text, "t+2\t")
}

func TestForecastFromCSV(t *testing.T) {
	clearForecastEnv(t)

	var b strings.Builder
	b.WriteString("month,cpi\n")
	for i := 1; i <= 24; i++ {
		fmt.Fprintf(&b, "m%d,%.1f\n", i, 100+0.5*float64(i))
	}
	path := filepath.Join(t.TempDir(), "cpi.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	out, err := execute(t, "", "forecast", "--file", path, "--column", "CPI", "--steps", "3", "--samples", "100", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "demo: false")

	_, err = execute(t, "", "forecast", "--file", path, "--column", "missing")
	assert.Error(t, err)

	_, err = execute(t, "", "forecast", "--steps", "366")
	assert.ErrorContains(t, err, "between 1 and 365")
}
