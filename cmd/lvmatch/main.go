// Command lvmatch reads two preference tables and prints the proposer-optimal
// stable matching.
//
//	lvmatch [-d] [-i prefs.txt] [-f text|yaml] [-c lvmatch.toml]
//	lvmatch gen --n 5 --seed 42 [-f yaml]
//
// Exit status is 0 on success and 1 on any error.
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatch/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code. A failure
// is logged at error level on stderr whatever --log-level says.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		lc := logging.DefaultConfig(stderr)
		logging.ApplyEnv(&lc)
		lc.Level = zerolog.ErrorLevel
		log := logging.New(stderr, lc)
		log.Error().Err(err).Msg("lvmatch failed")
		return 1
	}
	return 0
}
