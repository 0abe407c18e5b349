// Package cli provides helpers shared by rwtool subcommand parsers.
package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a valid subcommand
// before we stop suggesting it.
const maxSuggestDistance = 2

// UnknownSubcommandError builds the error for an unrecognized subcommand,
// listing valid options and suggesting the closest match for likely typos.
func UnknownSubcommandError(parent, got string, valid []string) error {
	msg := fmt.Sprintf("unknown %s subcommand: %s (valid: %s)",
		parent, got, strings.Join(valid, ", "))

	if suggestion := ClosestMatch(got, valid); suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", suggestion)
	}
	return fmt.Errorf("%s", msg)
}

// ClosestMatch returns the candidate with the smallest edit distance to got,
// or "" when nothing is close enough to be a plausible typo.
func ClosestMatch(got string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, candidate := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToLower(got), candidate)
		if dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}
