package service

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// DaemonFlags holds options for service mode.
type DaemonFlags struct {
	ConfigPath string
}

// ParseDaemonFlags parses arguments following `rwtool --service`.
func ParseDaemonFlags(args []string) (DaemonFlags, error) {
	fs := pflag.NewFlagSet("service", pflag.ContinueOnError)
	var flags DaemonFlags

	fs.StringVar(&flags.ConfigPath, "config", "", "config file path (default .rwtool/config.json)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: rwtool --service [options]

Run rwtool as an MCP server on stdio, exposing prompt rewriting as tools for
AI agents. Tools: rewrite_prompt, get_rewrite, list_rewrites.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return DaemonFlags{}, err
	}
	return flags, nil
}
