package pipeline

import (
	"math/rand"
	"strings"
	"time"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
)

// Rewrite runs the full rewriting pipeline over prompt: sanitize, then
// synonym substitution, adversarial padding, and (when enabled) the role
// wrapper, on a best-effort basis. A nil or partial cfg is merged with
// defaults. Blank input returns ""; any other input always yields a
// non-empty string of at most cfg.MaxLength characters, falling back to the
// sanitized prompt if every step fails.
func Rewrite(prompt string, cfg *config.Config) string {
	if strings.TrimSpace(prompt) == "" {
		return ""
	}

	cfg = cfg.WithDefaults()
	sanitized := Sanitize(prompt, cfg.MaxLength)

	rewritten := Run(Build(cfg), sanitized, cfg.MaxLength)
	if rewritten == "" {
		return sanitized
	}
	return rewritten
}

// Evaluate is the untyped entry point for callers handling decoded JSON or
// other loosely-typed input. Non-string values are rejected with "".
func Evaluate(input any, cfg *config.Config) string {
	prompt, ok := input.(string)
	if !ok {
		return ""
	}
	return Rewrite(prompt, cfg)
}

// Build assembles the transformation chain from a fully-merged config.
// Order matters: paraphrase first, then padding, then the role wrapper.
func Build(cfg *config.Config) []Transform {
	rng := newRand(cfg.RandomSeed)

	transforms := []Transform{
		SynonymSwap(cfg.Substitutions),
		AdversarialPadding(cfg.AdversarialTokens, rng),
	}
	if cfg.RoleWrapEnabled() {
		transforms = append(transforms, RoleWrap(cfg.RoleTemplate))
	}
	return transforms
}

// newRand creates a randomness source private to one pipeline, so concurrent
// rewrites never contend and a fixed seed replays identically.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
