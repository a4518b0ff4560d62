package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/roach88/tickid/internal/clock"
	"github.com/roach88/tickid/internal/trace"
	"github.com/roach88/tickid/pkg/tick"
)

// Harness executes one scenario against a deterministic clock.
type Harness struct {
	clock  *clock.Clock
	logger *slog.Logger
	seq    int64
}

// Option configures Run.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tokens trace.TokenGenerator
}

// WithLogger sends step-level logs to logger. Runs are silent by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTokenGenerator supplies the run token for scenarios that don't set
// one. Without it such runs use DefaultToken.
func WithTokenGenerator(gen trace.TokenGenerator) Option {
	return func(o *options) { o.tokens = gen }
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Create a clock at the scenario's start tick
// 2. Execute steps in order, recording one trace event per step
// 3. Check each step's expect clause
//
// Run only returns an error for conditions that prevent execution; failed
// expectations are reported in Result.Errors.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	token := scenario.Token
	if token == "" && o.tokens != nil {
		token = o.tokens.Generate()
	}
	if token == "" {
		token = DefaultToken
	}

	start := tick.Zero
	if scenario.Start != nil {
		start = scenario.Start.ID
	}

	h := &Harness{
		clock:  clock.NewAt(start),
		logger: o.logger.With("scenario", scenario.Name, "token", token),
	}

	result := NewResult()
	result.Snapshot = trace.Snapshot{
		Scenario: scenario.Name,
		Token:    token,
		Start:    start.String(),
		Events:   []trace.Event{},
	}

	h.logger.Debug("scenario starting", "start", start, "steps", len(scenario.Steps))

	for i, step := range scenario.Steps {
		event, err := h.execute(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		result.Snapshot.Events = append(result.Snapshot.Events, event)

		if msg := checkExpect(step.Expect, event); msg != "" {
			h.logger.Warn("expectation failed", "seq", event.Seq, "op", event.Op, "err", msg)
			result.AddError(fmt.Sprintf("step %d (%s): %s", event.Seq, event.Op, msg))
		}
	}

	result.Final = h.clock.Now()
	h.logger.Debug("scenario finished", "final", result.Final, "pass", result.Pass)
	return result, nil
}

// execute runs one step. A *tick.RangeError raised by the step is recorded
// as the event's fatal outcome; any other panic propagates.
func (h *Harness) execute(step Step) (event trace.Event, err error) {
	h.seq++
	operand := h.clock.Now()
	if step.Tick != nil {
		operand = step.Tick.ID
	}

	event = trace.Event{
		Seq:   h.seq,
		Op:    step.Op,
		Tick:  operand.String(),
		Delta: step.Delta,
	}
	if step.Other != nil {
		event.Other = step.Other.ID.String()
	}

	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(error)
			var re *tick.RangeError
			if !ok || !errors.As(fault, &re) {
				panic(r)
			}
			event.Fatal = fatalName(re)
			event.Result = ""
			h.logger.Debug("step fault", "seq", event.Seq, "op", event.Op, "tick", operand, "err", re)
		}
		event.Clock = h.clock.Now().String()
	}()

	switch step.Op {
	case OpAdvance:
		event.Result = h.clock.Advance(*step.Delta).String()
	case OpRewind:
		event.Result = h.clock.Rewind(*step.Delta).String()
	case OpAdd:
		event.Result = operand.Add(*step.Delta).String()
	case OpSub:
		event.Result = operand.Sub(*step.Delta).String()
	case OpDiff:
		event.Result = strconv.FormatInt(operand.Diff(step.Other.ID), 10)
	case OpCompare:
		event.Result = strconv.Itoa(operand.Compare(step.Other.ID))
	case OpShow:
		event.Result = operand.String()
	default:
		return event, fmt.Errorf("unknown op %q", step.Op)
	}

	h.logger.Debug("step executed", "seq", event.Seq, "op", event.Op, "tick", operand, "result", event.Result)
	return event, nil
}

func fatalName(re *tick.RangeError) string {
	if errors.Is(re, tick.ErrUnderflow) {
		return FatalUnderflow
	}
	return FatalOverflow
}

// checkExpect returns a failure message, or "" when the event satisfies
// expect.
func checkExpect(expect *Expect, event trace.Event) string {
	if expect == nil {
		return ""
	}
	if expect.Fatal != "" {
		if event.Fatal != expect.Fatal {
			return fmt.Sprintf("expected fatal %s, got %s", expect.Fatal, describe(event))
		}
		return ""
	}
	if event.Fatal != "" {
		return fmt.Sprintf("unexpected fatal %s", event.Fatal)
	}
	if expect.Result != "" && expect.Result != event.Result {
		return fmt.Sprintf("expected result %q, got %q", expect.Result, event.Result)
	}
	return ""
}

func describe(event trace.Event) string {
	if event.Fatal != "" {
		return "fatal " + event.Fatal
	}
	return fmt.Sprintf("result %q", event.Result)
}
