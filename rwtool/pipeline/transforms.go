package pipeline

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
)

// SynonymSwap returns a transform that paraphrases the prompt word by word
// using the given substitution table. Lookup is case-insensitive; an all-lower
// token takes the replacement verbatim, any other casing capitalizes it.
func SynonymSwap(substitutions map[string]string) Transform {
	return func(prompt string) (string, error) {
		if len(substitutions) == 0 {
			return "", errors.New("no substitutions configured")
		}

		tokens := strings.Split(prompt, " ")
		for i, token := range tokens {
			replacement, ok := substitutions[strings.ToLower(token)]
			if !ok {
				continue
			}
			if token == strings.ToLower(token) {
				tokens[i] = replacement
			} else {
				tokens[i] = capitalize(replacement)
			}
		}
		return strings.Join(tokens, " "), nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// AdversarialPadding returns a transform that wraps the prompt in a token
// drawn from the pool. Control-looking tokens tend to slip past naive keyword
// filters. The rng must not be shared across concurrent calls.
func AdversarialPadding(tokens []string, rng *rand.Rand) Transform {
	return func(prompt string) (string, error) {
		if len(tokens) == 0 {
			return "", errors.New("no adversarial tokens configured")
		}
		token := tokens[rng.Intn(len(tokens))]
		return token + " " + prompt + " " + token, nil
	}
}

// RoleWrap returns a transform that frames the prompt inside a role-play
// template. The template must contain the {prompt} placeholder.
func RoleWrap(template string) Transform {
	return func(prompt string) (string, error) {
		if !strings.Contains(template, config.PromptPlaceholder) {
			return "", errors.New("role template missing " + config.PromptPlaceholder + " placeholder")
		}
		return strings.ReplaceAll(template, config.PromptPlaceholder, prompt), nil
	}
}
