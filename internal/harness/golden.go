package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/tickid/internal/trace"
)

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the snapshot doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, &result.Snapshot); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing snapshot against a golden file without
// re-running anything.
func AssertGolden(t *testing.T, name string, snapshot *trace.Snapshot) error {
	t.Helper()

	data, err := snapshot.Canonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
