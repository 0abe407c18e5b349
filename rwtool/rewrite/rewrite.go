package rewrite

import (
	"fmt"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
	"github.com/go-harden/rewrite-toolbox/rwtool/pipeline"
)

// options collects flag overrides layered on top of the loaded config.
type options struct {
	configPath string
	maxLength  int
	seed       int64
	seedSet    bool
	noRoleWrap bool
	tokens     []string
	raw        bool
}

func run(input string, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	result := pipeline.Rewrite(input, cfg)

	if opts.raw {
		fmt.Print(result)
	} else {
		fmt.Println(result)
	}
	return nil
}

// loadConfig resolves the effective config: file (or defaults) with CLI flag
// overrides applied on top.
func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadOrDefaults(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.maxLength > 0 {
		cfg.MaxLength = opts.maxLength
	}
	if opts.seedSet {
		seed := opts.seed
		cfg.RandomSeed = &seed
	}
	if opts.noRoleWrap {
		f := false
		cfg.IncludeRoleWrap = &f
	}
	if len(opts.tokens) > 0 {
		cfg.AdversarialTokens = opts.tokens
	}
	return cfg, nil
}
