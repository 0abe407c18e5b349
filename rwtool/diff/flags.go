package diff

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/go-harden/rewrite-toolbox/rwtool/cliutil"
)

type options struct {
	configPath string
	seed       int64
	seedSet    bool
	noRoleWrap bool
}

// Parse handles `rwtool diff` arguments and runs the command.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("diff", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	var opts options
	var color string

	fs.StringVar(&opts.configPath, "config", "", "config file path (default .rwtool/config.json)")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for reproducible token selection")
	fs.BoolVar(&opts.noRoleWrap, "no-role-wrap", false, "skip the trailing role-play wrapper step")
	fs.StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: rwtool diff [options] <prompt>

Rewrite a prompt and show a character-level diff between the sanitized input
and the rewritten output, with an edit-distance summary.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	opts.seedSet = fs.Changed("seed")
	cliutil.Output.ColorMode = cliutil.ParseColorMode(color)

	if len(fs.Args()) < 1 {
		fs.Usage()
		return errors.New("prompt required")
	}

	return run(strings.Join(fs.Args(), " "), opts)
}
