package harness

import (
	"github.com/roach88/tickid/internal/trace"
	"github.com/roach88/tickid/pkg/tick"
)

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true if every expect clause matched.
	Pass bool

	// Snapshot is the recorded trace of the run.
	Snapshot trace.Snapshot

	// Final is the clock's tick after the last step.
	Final tick.ID

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
