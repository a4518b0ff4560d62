// Package cli implements the tickid command tree.
//
// Arithmetic commands (show, parse, add, sub, diff, compare) operate on tick
// arguments written either as a decimal count or in display form
// ("tick:0000002A"). Range faults are reported as errors with exit code 1
// rather than crashing the process.
//
// Scenario commands (validate, test, trace) drive the harness package.
//
// Every command honours the global --format (text|json) and --verbose
// flags. JSON output uses the CLIResponse envelope.
package cli
