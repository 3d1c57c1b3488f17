package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSuite_Fixtures(t *testing.T) {
	result, err := RunSuite("testdata/scenarios", SuiteOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Passed, "%+v", result.Scenarios)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, "conversions", result.Scenarios[0].Name)
	assert.Equal(t, "laws", result.Scenarios[1].Name)
}

func TestRunSuite_Filter(t *testing.T) {
	result, err := RunSuite("testdata/scenarios", SuiteOptions{Filter: "law*"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "laws", result.Scenarios[0].Name)
}

func TestRunSuite_MissingDir(t *testing.T) {
	_, err := RunSuite("/nonexistent/scenarios", SuiteOptions{})
	var notFound *DirNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRunSuite_InvalidFilter(t *testing.T) {
	_, err := RunSuite("testdata/scenarios", SuiteOptions{Filter: "["})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter pattern")
}

func TestRunSuite_UpdateThenCompare(t *testing.T) {
	dir := t.TempDir()
	scenario := `
name: tiny
description: "one conversion"
run_id: run-tiny
conversions:
  - value: 3
    from: arabic.Arabic
    to: roman.Standard
    expect:
      numeral: III
`
	path := filepath.Join(dir, "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenario), 0644))

	result, err := RunSuite(dir, SuiteOptions{Update: true})
	require.NoError(t, err)
	require.Equal(t, 1, result.Passed)
	assert.True(t, result.Scenarios[0].GoldenUpdated)

	golden, err := os.ReadFile(GoldenPath(path))
	require.NoError(t, err)
	assert.Equal(t,
		`{"pass":true,"run_id":"run-tiny","scenario_name":"tiny","trace":[{"from":"arabic.Arabic","input":"3","input_kind":"integer","output":"III","output_kind":"text","seq":1,"to":"roman.Standard"}]}`,
		string(golden))

	result, err = RunSuite(dir, SuiteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)

	// A stale golden file fails the scenario.
	require.NoError(t, os.WriteFile(GoldenPath(path), []byte("{}"), 0644))
	result, err = RunSuite(dir, SuiteOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Scenarios[0].Errors[0], "does not match golden file")
}

func TestRunSuite_LoadFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("name: [oops"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	result, err := RunSuite(dir, SuiteOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "broken.yml", result.Scenarios[0].Name)
	assert.Contains(t, result.Scenarios[0].Errors[0], "failed to load scenario")
}

func TestGoldenPath(t *testing.T) {
	assert.Equal(t, filepath.Join("scenarios", "golden", "roman.golden"), GoldenPath(filepath.Join("scenarios", "roman.yaml")))
}
