package harness

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirNotFoundError is returned when the scenario directory doesn't exist.
type DirNotFoundError struct {
	Dir string
}

// Error implements the error interface.
func (e *DirNotFoundError) Error() string {
	return fmt.Sprintf("scenarios directory not found: %s", e.Dir)
}

// SuiteOptions controls RunSuite.
type SuiteOptions struct {
	// Filter is a glob matched against file names without extension.
	Filter string

	// Update rewrites golden files instead of comparing against them.
	Update bool
}

// ScenarioOutcome is the result of one scenario file.
type ScenarioOutcome struct {
	Path          string   `json:"path"`
	Name          string   `json:"name"`
	Pass          bool     `json:"pass"`
	GoldenUpdated bool     `json:"golden_updated,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// SuiteResult summarizes a directory of scenarios.
type SuiteResult struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
	Total     int               `json:"total"`
}

// FindScenarios returns the .yaml and .yml files under dir, in lexical
// order, whose base name matches filter.
func FindScenarios(dir, filter string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, &DirNotFoundError{Dir: dir}
	}
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			if matched, _ := filepath.Match(filter, name); !matched {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// GoldenPath returns golden/<name>.golden next to the scenario file.
func GoldenPath(scenarioFile string) string {
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// RunSuite loads and runs every scenario under dir.
//
// For each scenario:
// 1. Load and validate the file
// 2. Run it
// 3. Write its golden file (Update) or compare against it when present
//
// Scenario failures are collected in the result; an error is returned
// only when the directory cannot be scanned.
func RunSuite(dir string, so SuiteOptions, opts ...Option) (*SuiteResult, error) {
	files, err := FindScenarios(dir, so.Filter)
	if err != nil {
		return nil, err
	}

	result := &SuiteResult{
		Scenarios: make([]ScenarioOutcome, 0, len(files)),
		Total:     len(files),
	}
	for _, path := range files {
		outcome := runScenarioFile(path, so.Update, opts)
		if outcome.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Scenarios = append(result.Scenarios, outcome)
	}
	return result, nil
}

func runScenarioFile(path string, update bool, opts []Option) ScenarioOutcome {
	outcome := ScenarioOutcome{Path: path, Name: filepath.Base(path)}
	fail := func(format string, args ...any) ScenarioOutcome {
		outcome.Pass = false
		outcome.Errors = append(outcome.Errors, fmt.Sprintf(format, args...))
		return outcome
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		return fail("failed to load scenario: %v", err)
	}
	outcome.Name = scenario.Name

	result, err := Run(scenario, opts...)
	if err != nil {
		return fail("execution failed: %v", err)
	}

	snapshot, err := NewTraceSnapshot(scenario, result).Bytes()
	if err != nil {
		return fail("failed to marshal trace: %v", err)
	}

	goldenPath := GoldenPath(path)
	if update {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			return fail("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, snapshot, 0644); err != nil {
			return fail("failed to write golden file: %v", err)
		}
		outcome.GoldenUpdated = true
		outcome.Pass = true
		return outcome
	}

	outcome.Pass = result.Pass
	outcome.Errors = append(outcome.Errors, result.Errors...)

	golden, err := os.ReadFile(goldenPath)
	switch {
	case os.IsNotExist(err):
		// Assertion-based validation only.
	case err != nil:
		return fail("failed to read golden file: %v", err)
	case !bytes.Equal(golden, snapshot):
		return fail("trace does not match golden file (run with --update to regenerate)")
	}
	return outcome
}
