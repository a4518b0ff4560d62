package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tickid/internal/harness"
	"github.com/roach88/tickid/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Token string

	// Tokens supplies run tokens when neither the scenario nor --token sets
	// one. Defaults to UUIDv7 tokens.
	Tokens trace.TokenGenerator
}

// TraceOutput is the output of the trace command.
type TraceOutput struct {
	trace.Snapshot
	Final  string   `json:"final"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
	Digest string   `json:"digest"`
}

func (o TraceOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s (token %s)\n", o.Scenario, o.Token)
	fmt.Fprintf(&b, "Start: %s\n", o.Start)
	for _, e := range o.Events {
		fmt.Fprintf(&b, "  #%d %-8s %s", e.Seq, e.Op, e.Tick)
		if e.Other != "" {
			fmt.Fprintf(&b, " %s", e.Other)
		}
		if e.Delta != nil {
			fmt.Fprintf(&b, " %d", *e.Delta)
		}
		if e.Fatal != "" {
			fmt.Fprintf(&b, " -> FATAL %s", e.Fatal)
		} else {
			fmt.Fprintf(&b, " -> %s", e.Result)
		}
		fmt.Fprintf(&b, "  [clock %s]\n", e.Clock)
	}
	fmt.Fprintf(&b, "Final: %s\n", o.Final)
	for _, e := range o.Errors {
		fmt.Fprintf(&b, "✗ %s\n", e)
	}
	fmt.Fprintf(&b, "Digest: %s", o.Digest)
	return b.String()
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts, Tokens: trace.UUIDv7Generator{}}

	cmd := &cobra.Command{
		Use:   "trace <scenario-file>",
		Short: "Run one scenario and print its trace",
		Long: `Run one tick scenario and print every recorded event and the trace digest.

The run token is taken from --token, then from the scenario file; if
neither sets one a UUIDv7 token is generated.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Token, "token", "", "run token (overrides the scenario's token)")

	return cmd
}

func runTrace(opts *TraceOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeLoadFailed, err.Error(), issuesFromError(err))
	}
	if opts.Token != "" {
		scenario.Token = opts.Token
	}

	runOpts := []harness.Option{harness.WithLogger(opts.logger(cmd.ErrOrStderr()))}
	if opts.Tokens != nil {
		runOpts = append(runOpts, harness.WithTokenGenerator(opts.Tokens))
	}

	result, err := harness.Run(scenario, runOpts...)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	digest, err := result.Snapshot.Digest()
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	out := TraceOutput{
		Snapshot: result.Snapshot,
		Final:    result.Final.String(),
		Pass:     result.Pass,
		Errors:   result.Errors,
		Digest:   digest,
	}
	if err := f.Success(out); err != nil {
		return err
	}
	if !result.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("%d expectation(s) failed", len(result.Errors)))
	}
	return nil
}
