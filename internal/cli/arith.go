package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/tickid/pkg/tick"
)

// TickResult is the output of commands that produce a tick.
type TickResult struct {
	Tick  string `json:"tick"`
	Value uint32 `json:"value"`
}

func (r TickResult) String() string { return r.Tick }

func newTickResult(id tick.ID) TickResult {
	return TickResult{Tick: id.String(), Value: id.Value()}
}

// DiffResult is the output of diff.
type DiffResult struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Diff int64  `json:"diff"`
}

func (r DiffResult) String() string { return strconv.FormatInt(r.Diff, 10) }

// CompareResult is the output of compare.
type CompareResult struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Result int    `json:"result"`
}

func (r CompareResult) String() string {
	sym := "="
	switch r.Result {
	case -1:
		sym = "<"
	case 1:
		sym = ">"
	}
	return fmt.Sprintf("%s %s %s", r.A, sym, r.B)
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <tick>",
		Short: "Render a tick in display form",
		Long: `Render a tick in display form.

Example:
  tickid show 42        # tick:0000002A`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			id, err := parseTickArg(f, args[0])
			if err != nil {
				return err
			}
			return f.Success(newTickResult(id))
		},
	}
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <tick:XXXXXXXX>",
		Short: "Print the count of a tick in display form",
		Long: `Print the decimal count of a tick written in display form.

Example:
  tickid parse tick:0000002A    # 42`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			id, err := tick.Parse(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeInvalidTick, err.Error(), nil)
			}
			if f.Format == "json" {
				return f.Success(newTickResult(id))
			}
			return f.Success(id.Value())
		},
	}
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return newShiftCommand(rootOpts, "add", "Advance a tick by delta ticks", tick.ID.CheckedAdd)
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return newShiftCommand(rootOpts, "sub", "Move a tick back by delta ticks", tick.ID.CheckedSub)
}

func newShiftCommand(rootOpts *RootOptions, name, short string, shift func(tick.ID, uint32) (tick.ID, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <tick> <delta>",
		Short: short,
		Long: short + `.

Leaving the range tick:00000000..tick:FFFFFFFF is reported as an error
(E201 overflow, E202 underflow) with exit code 1.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			id, err := parseTickArg(f, args[0])
			if err != nil {
				return err
			}
			delta, err := parseDeltaArg(f, args[1])
			if err != nil {
				return err
			}

			f.VerboseLog("%s %s %d", name, id, delta)
			result, err := shift(id, delta)
			if err != nil {
				return rangeFailure(f, err)
			}
			return f.Success(newTickResult(result))
		},
	}
}

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the signed tick count a - b",
		Long: `Print the signed number of ticks from b to a.

Example:
  tickid diff 0 4294967295    # -4294967295`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			a, b, err := parseTickPair(f, args)
			if err != nil {
				return err
			}
			return f.Success(DiffResult{A: a.String(), B: b.String(), Diff: a.Diff(b)})
		},
	}
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "compare <a> <b>",
		Short:         "Order two ticks",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			a, b, err := parseTickPair(f, args)
			if err != nil {
				return err
			}
			return f.Success(CompareResult{A: a.String(), B: b.String(), Result: a.Compare(b)})
		},
	}
}

func parseTickArg(f *OutputFormatter, arg string) (tick.ID, error) {
	id, err := tick.ParseLoose(arg)
	if err != nil {
		return tick.Zero, f.Fail(ExitCommandError, ErrCodeInvalidTick, err.Error(), nil)
	}
	return id, nil
}

func parseTickPair(f *OutputFormatter, args []string) (tick.ID, tick.ID, error) {
	a, err := parseTickArg(f, args[0])
	if err != nil {
		return tick.Zero, tick.Zero, err
	}
	b, err := parseTickArg(f, args[1])
	if err != nil {
		return tick.Zero, tick.Zero, err
	}
	return a, b, nil
}

func parseDeltaArg(f *OutputFormatter, arg string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, f.Fail(ExitCommandError, ErrCodeInvalidDelta,
			fmt.Sprintf("invalid delta %q: want a decimal uint32", arg), nil)
	}
	return uint32(v), nil
}

// rangeFailure reports a *tick.RangeError from a checked operation.
func rangeFailure(f *OutputFormatter, err error) error {
	var re *tick.RangeError
	if !errors.As(err, &re) {
		return f.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	code := ErrCodeOverflow
	if errors.Is(err, tick.ErrUnderflow) {
		code = ErrCodeUnderflow
	}
	details := map[string]any{"op": string(re.Op), "value": re.Value, "delta": re.Delta}
	return f.Fail(ExitFailure, code, err.Error(), details)
}
