// Command tickid inspects and computes with simulation tick identifiers.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/tickid/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands that already reported their failure return a bare ExitError;
	// anything else (flag parsing, unknown command) still needs printing.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
