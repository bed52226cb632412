package config

import (
	_ "embed"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName     = "config.yaml"
	TOMLConfigurationName = "config.toml"
)

type Configuration struct {
	configurationDir string

	Prompt   string `json:"prompt" toml:"prompt"`
	ExitWord string `json:"exit_word" toml:"exit_word" validate:"required"`

	Fetch Fetch `json:"fetch" toml:"fetch"`
	Exec  Exec  `json:"exec" toml:"exec"`
}

type Fetch struct {
	Port        int    `json:"port" toml:"port" validate:"gte=0,lte=65535"`
	DialTimeout string `json:"dial_timeout" toml:"dial_timeout" validate:"omitempty,duration"`
	RateLimit   int64  `json:"rate_limit" toml:"rate_limit" validate:"gte=0"`
}

// Timeout returns the parsed dial timeout, zero if unset.
func (f Fetch) Timeout() time.Duration {
	d, _ := time.ParseDuration(f.DialTimeout)
	return d
}

type Exec struct {
	Dir string   `json:"dir" toml:"dir"`
	Env []string `json:"env" toml:"env" validate:"dive,envpair"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	validate.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("envpair", func(fl validator.FieldLevel) bool {
		key, _, ok := strings.Cut(fl.Field().String(), "=")
		return ok && key != ""
	})

	return validate.Struct(c)
}

// Dir returns the directory the configuration was loaded from, empty for the
// defaults.
func (c *Configuration) Dir() string {
	return c.configurationDir
}

// Default returns the built-in configuration.
func Default() *Configuration {
	return defaultConfig()
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
