package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory, or from the given
// config.yaml or config.toml file. Keys missing from the file keep their
// default values.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	dir, name := path, ""
	// If given the path to a config file, move back up a level.
	if base := filepath.Base(path); base == ConfigurationName || base == TOMLConfigurationName {
		dir, name = filepath.Dir(path), base
	}

	if name == "" {
		for _, candidate := range []string{ConfigurationName, TOMLConfigurationName} {
			if ok, _ := afero.Exists(fsys, filepath.Join(dir, candidate)); ok {
				name = candidate
				break
			}
		}
	}
	if name == "" {
		return nil, fmt.Errorf("no %s in %q: %w", ConfigurationName, dir, fs.ErrNotExist)
	}

	configContents, err := afero.ReadFile(fsys, filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	out := defaultConfig()
	if err := decode(name, configContents, out); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, name), err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, name), err)
	}

	out.configurationDir = dir
	return out, nil
}

func decode(name string, data []byte, out *Configuration) error {
	if name != TOMLConfigurationName {
		return yaml.UnmarshalStrict(data, out)
	}

	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(out)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New("unknown field " + undecoded[0].String())
	}
	return nil
}
