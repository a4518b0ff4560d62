package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tickid/internal/harness"
)

// FileValidation is the validation outcome of one scenario file.
type FileValidation struct {
	Path   string          `json:"path"`
	Valid  bool            `json:"valid"`
	Issues []harness.Issue `json:"issues,omitempty"`
}

// ValidationResult holds the outcome for every file given to validate.
type ValidationResult struct {
	Files   []FileValidation `json:"files"`
	Invalid int              `json:"invalid"`
}

func (r ValidationResult) String() string {
	var b strings.Builder
	for _, f := range r.Files {
		if f.Valid {
			fmt.Fprintf(&b, "✓ %s\n", f.Path)
			continue
		}
		fmt.Fprintf(&b, "✗ %s\n", f.Path)
		for _, issue := range f.Issues {
			if issue.Path != "" {
				fmt.Fprintf(&b, "  %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(&b, "  %s\n", issue.Message)
			}
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>...",
		Short: "Validate scenario files without running them",
		Long: `Validate tick scenario files against the scenario schema and the
per-operation operand rules, without executing any steps.

Exit codes:
  0 - All files valid
  1 - One or more files invalid
  2 - Command error (file not found, etc.)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	result := ValidationResult{Files: make([]FileValidation, 0, len(paths))}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return f.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("scenario file not found: %s", path), nil)
		}

		f.VerboseLog("Validating %s", path)
		fv := FileValidation{Path: path, Valid: true}
		if _, err := harness.LoadScenario(path); err != nil {
			fv.Valid = false
			fv.Issues = issuesFromError(err)
			result.Invalid++
		}
		result.Files = append(result.Files, fv)
	}

	if result.Invalid > 0 {
		if f.Format == "json" {
			_ = f.encodeJSON(CLIResponse{
				Status: "error",
				Data:   result,
				Error: &CLIError{
					Code:    ErrCodeSchema,
					Message: fmt.Sprintf("%d scenario file(s) invalid", result.Invalid),
				},
			})
		} else {
			fmt.Fprintln(f.Writer, result)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario file(s) invalid", result.Invalid))
	}

	return f.Success(result)
}

// issuesFromError flattens a load error into issues, keeping per-field
// schema paths when the error carries them.
func issuesFromError(err error) []harness.Issue {
	var ve *harness.ValidationError
	if errors.As(err, &ve) {
		return ve.Issues
	}
	return []harness.Issue{{Message: err.Error()}}
}
