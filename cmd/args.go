package cmd

import (
	"flag"
	"fmt"

	"github.com/j57n-3co-x-5735/GoogleTasksToSuperProductivity/internal/config"
)

// resolveArgs parses subcommand arguments into cfg, accepting the input
// path as a positional argument before or between flags (stdlib flag
// parsing stops at the first non-flag argument, so the remainder is
// re-parsed after the positional is peeled off).
func resolveArgs(cfg *config.Config, name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := config.ApplyFlags(cfg, fs, args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 0 && cfg.InputFile == "" {
		cfg.InputFile = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		trailing := flag.NewFlagSet(name, flag.ContinueOnError)
		if err := config.ApplyFlags(cfg, trailing, rest); err != nil {
			return err
		}
		if extra := trailing.Args(); len(extra) > 0 {
			return fmt.Errorf("unexpected argument: %s", extra[0])
		}
	}

	if cfg.InputFile == "" {
		return fmt.Errorf("missing input file (a Google Tasks Takeout JSON)")
	}
	return nil
}
