package diff

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-harden/rewrite-toolbox/rwtool/cliutil"
	"github.com/go-harden/rewrite-toolbox/rwtool/config"
	"github.com/go-harden/rewrite-toolbox/rwtool/pipeline"
)

func run(input string, opts options) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadOrDefaults(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.seedSet {
		seed := opts.seed
		cfg.RandomSeed = &seed
	}
	if opts.noRoleWrap {
		f := false
		cfg.IncludeRoleWrap = &f
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	sanitized := pipeline.Sanitize(input, cfg.MaxLength)
	if sanitized == "" {
		return errors.New("prompt is empty after sanitization")
	}
	rewritten := pipeline.Rewrite(input, cfg)

	fmt.Printf("%s\n\n", cliutil.Bold("Rewrite Diff"))
	fmt.Print(renderDiff(sanitized, rewritten))

	return nil
}

// renderDiff formats the changed prompt as a "~" block with inline
// highlighting, followed by an edit-distance summary.
func renderDiff(sanitized, rewritten string) string {
	hlA, hlB := inlineHighlight(sanitized, rewritten)

	var out strings.Builder
	fmt.Fprintf(&out, "%s prompt:\n", cliutil.Warning("~"))
	fmt.Fprintf(&out, "  %s %s\n", cliutil.Error("-"), hlA)
	fmt.Fprintf(&out, "  %s %s\n\n", cliutil.Success("+"), hlB)

	dist := levenshtein.ComputeDistance(sanitized, rewritten)
	fmt.Fprintf(&out, "%s\n", cliutil.Muted(fmt.Sprintf("edit distance: %d (%d chars -> %d chars)",
		dist, utf8.RuneCountInString(sanitized), utf8.RuneCountInString(rewritten))))

	return out.String()
}

// splitRunes splits a string into per-rune string slices for SequenceMatcher.
func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

// inlineHighlight computes character-level diff between a and b, returning
// strings with changed segments wrapped in BoldRed (removals) and BoldGreen (additions).
func inlineHighlight(a, b string) (string, string) {
	seqA := splitRunes(a)
	seqB := splitRunes(b)

	m := difflib.NewMatcher(seqA, seqB)
	opcodes := m.GetOpCodes()

	var outA, outB strings.Builder
	for _, op := range opcodes {
		chunkA := strings.Join(seqA[op.I1:op.I2], "")
		chunkB := strings.Join(seqB[op.J1:op.J2], "")

		switch op.Tag {
		case 'e': // equal
			outA.WriteString(chunkA)
			outB.WriteString(chunkB)
		case 'r': // replace
			outA.WriteString(cliutil.BoldRed(chunkA))
			outB.WriteString(cliutil.BoldGreen(chunkB))
		case 'd': // delete (only in A)
			outA.WriteString(cliutil.BoldRed(chunkA))
		case 'i': // insert (only in B)
			outB.WriteString(cliutil.BoldGreen(chunkB))
		}
	}
	return outA.String(), outB.String()
}
