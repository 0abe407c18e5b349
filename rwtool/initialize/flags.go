package initialize

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// Parse handles `rwtool init` arguments and runs the command.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("init", pflag.ContinueOnError)
	var reset bool
	var dir string

	fs.BoolVar(&reset, "reset", false, "overwrite an existing config with defaults")
	fs.StringVar(&dir, "dir", ".", "directory to initialize")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: rwtool init [options]

Create the .rwtool working directory with a default config.json. Edit the
config to adjust the length cap, token pool, synonym table, and role template.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	return run(dir, reset)
}
