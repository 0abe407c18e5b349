package main

import (
	"fmt"
	"os"

	"github.com/go-harden/rewrite-toolbox/rwtool/cli"
	"github.com/go-harden/rewrite-toolbox/rwtool/config"
	"github.com/go-harden/rewrite-toolbox/rwtool/diff"
	"github.com/go-harden/rewrite-toolbox/rwtool/initialize"
	"github.com/go-harden/rewrite-toolbox/rwtool/rewrite"
)

var subcommands = []string{"rewrite", "diff", "init", "version", "help"}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var err error
	switch args[0] {
	case "rewrite":
		err = rewrite.Parse(args[1:])
	case "diff":
		err = diff.Parse(args[1:])
	case "init":
		err = initialize.Parse(args[1:])
	case "version", "--version":
		fmt.Printf("rwtool %s\n", config.Version)
	case "help", "--help", "-h":
		printUsage()
	default:
		err = cli.UnknownSubcommandError("rwtool", args[0], subcommands)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: rwtool <command> [options]

Prompt rewriting toolbox for LLM red-team testing. Rewrites a prompt through
an ordered chain of text transformations (synonym substitution, adversarial
token padding, role-play wrapping) with a hard output length cap.

Commands:
  rewrite    Rewrite a prompt through the transformation chain
  diff       Rewrite and show a character-level diff against the input
  init       Create the .rwtool working directory with a default config
  version    Print version
  help       Show this help

Service mode:
  rwtool --service [options]   Run as an MCP stdio server for AI agents

Use "rwtool <command> --help" for more information.
`)
}
