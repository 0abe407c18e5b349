package initialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-harden/rewrite-toolbox/rwtool/config"
)

func run(dir string, reset bool) error {
	workDir := filepath.Join(dir, config.DirName)
	if err := os.MkdirAll(workDir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", workDir, err)
	}

	path := filepath.Join(workDir, config.FileName)
	written, err := writeConfigIfNeeded(path, reset)
	if err != nil {
		return err
	}

	if written {
		fmt.Printf("Initialized %s\n", path)
	} else {
		fmt.Printf("Config already exists at %s (use --reset to overwrite)\n", path)
	}
	return nil
}

// writeConfigIfNeeded writes a default config to path. An existing file is
// preserved unless reset is set. Reports whether a file was written.
func writeConfigIfNeeded(path string, reset bool) (bool, error) {
	if !reset {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		} else if !os.IsNotExist(err) {
			return false, err
		}
	}

	if err := config.Defaults().Save(path); err != nil {
		return false, fmt.Errorf("writing config: %w", err)
	}
	return true, nil
}
