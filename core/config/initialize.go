package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir. An existing
// configuration is never overwritten.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) error {
	target := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, target)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s already exists: %w", target, os.ErrExist)
	}

	logger.Printf("Creating %s\n", dir)
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return err
	}

	logger.Printf("Writing default configuration to %s\n", target)
	return afero.WriteFile(fsys, target, defaultConfigData, 0600)
}
