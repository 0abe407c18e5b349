package rewrite

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Parse handles `rwtool rewrite` arguments and runs the command.
func Parse(args []string) error {
	fs := pflag.NewFlagSet("rewrite", pflag.ContinueOnError)
	fs.SetInterspersed(true)
	var opts options
	var file string

	fs.StringVar(&opts.configPath, "config", "", "config file path (default .rwtool/config.json)")
	fs.IntVar(&opts.maxLength, "max-length", 0, "override maximum output length in characters")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for reproducible token selection")
	fs.BoolVar(&opts.noRoleWrap, "no-role-wrap", false, "skip the trailing role-play wrapper step")
	fs.StringArrayVar(&opts.tokens, "token", nil, "override the padding token pool (repeatable)")
	fs.StringVarP(&file, "file", "f", "", "read input from file (- for stdin)")
	fs.BoolVar(&opts.raw, "raw", false, "output without trailing newline")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: rwtool rewrite [options] [prompt]

Rewrite a prompt through the transformation chain: synonym substitution,
adversarial token padding, and a role-play wrapper. Steps are best-effort; a
failing step is skipped and the previous wording is kept. Output never exceeds
the configured maximum length.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	opts.seedSet = fs.Changed("seed")

	input, err := readInput(fs.Args(), file)
	if err != nil {
		return err
	}

	return run(input, opts)
}

// readInput resolves the prompt from positional args, a file, or stdin.
func readInput(remaining []string, file string) (string, error) {
	if file != "" {
		var data []byte
		var err error
		if file == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return string(data), nil
	}
	if len(remaining) > 0 {
		return strings.Join(remaining, " "), nil
	}
	return "", errors.New("input required: provide prompt argument or use -f")
}
