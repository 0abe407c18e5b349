// Package pipeline implements the prompt rewriting core: a sanitizer plus an
// ordered chain of best-effort text transformations with a hard length cap
// enforced after every step.
package pipeline

import "fmt"

// Transform is a single rewriting step. It receives the current working
// prompt and returns the replacement, or an error to leave the prompt
// unchanged. Transforms must be pure string functions; any randomness comes
// from a source captured at construction time.
type Transform func(string) (string, error)

// Run applies transforms to initial in order, carrying forward the last
// successful result. A step that errors, panics, or returns an empty string
// is skipped and the working prompt is kept as-is; the chain never aborts.
// The result is re-clipped to maxLength characters after every successful
// step, so intermediate values never exceed the cap.
func Run(transforms []Transform, initial string, maxLength int) string {
	current := initial
	for _, transform := range transforms {
		candidate, err := apply(transform, current)
		if err != nil || candidate == "" {
			continue
		}
		current = Truncate(candidate, maxLength)
	}
	return current
}

// apply invokes a single transform, converting panics into errors so a
// misbehaving step cannot take down the chain.
func apply(transform Transform, input string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = fmt.Errorf("transform panic: %v", r)
		}
	}()
	return transform(input)
}
