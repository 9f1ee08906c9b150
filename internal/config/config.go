package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"commodity-profits/internal/data"
	"commodity-profits/internal/logging"
)

// EnvPrefix namespaces environment overrides, e.g. PROFITS_DATA_DIR.
const EnvPrefix = "PROFITS"

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
	API  APIConfig  `yaml:"api"`
}

type DataConfig struct {
	Dir       string `yaml:"dir"`
	Ext       string `yaml:"ext"`
	ParseMode string `yaml:"parse_mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type APIConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// envOverrides mirrors Config for envconfig. Pointer fields stay nil when the
// variable is unset so they never clobber file values. Only PROFITS_* names
// are read; an explicit envconfig tag would also match the bare name.
type envOverrides struct {
	DataDir        *string  `split_words:"true"`
	DataExt        *string  `split_words:"true"`
	ParseMode      *string  `split_words:"true"`
	LogLevel       *string  `split_words:"true"`
	LogJSON        *bool    `split_words:"true"`
	APIPort        *int     `split_words:"true"`
	AllowedOrigins []string `split_words:"true"`
}

func Default() *Config {
	return &Config{
		Data: DataConfig{Dir: data.DefaultDir, Ext: data.DefaultExt, ParseMode: string(data.ParseStrict)},
		Log:  LogConfig{Level: "info"},
		API:  APIConfig{Port: 8080, AllowedOrigins: []string{"*"}},
	}
}

// Load builds a config from defaults, then the YAML file at path (skipped when
// path is empty), then PROFITS_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		var file Config
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
		*c = Merge(*c, file)
	}

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, errors.Wrap(err, "read environment overrides")
	}
	env.apply(c)
	return c, nil
}

func (e envOverrides) apply(c *Config) {
	if e.DataDir != nil {
		c.Data.Dir = *e.DataDir
	}
	if e.DataExt != nil {
		c.Data.Ext = *e.DataExt
	}
	if e.ParseMode != nil {
		c.Data.ParseMode = *e.ParseMode
	}
	if e.LogLevel != nil {
		c.Log.Level = *e.LogLevel
	}
	if e.LogJSON != nil {
		c.Log.JSON = *e.LogJSON
	}
	if e.APIPort != nil {
		c.API.Port = *e.APIPort
	}
	if len(e.AllowedOrigins) > 0 {
		c.API.AllowedOrigins = e.AllowedOrigins
	}
}

// Merge overlays non-zero fields from override onto base.
func Merge(base, override Config) Config {
	out := base
	if override.Data.Dir != "" {
		out.Data.Dir = override.Data.Dir
	}
	if override.Data.Ext != "" {
		out.Data.Ext = override.Data.Ext
	}
	if override.Data.ParseMode != "" {
		out.Data.ParseMode = override.Data.ParseMode
	}
	if override.Log.Level != "" {
		out.Log.Level = override.Log.Level
	}
	// A bool can't express "unset" in YAML here; true always wins.
	if override.Log.JSON {
		out.Log.JSON = true
	}
	if override.API.Port != 0 {
		out.API.Port = override.API.Port
	}
	if len(override.API.AllowedOrigins) > 0 {
		out.API.AllowedOrigins = override.API.AllowedOrigins
	}
	return out
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.Data.Dir) == "" {
		return errors.New("data.dir is required")
	}
	if _, err := data.ParseParseMode(c.Data.ParseMode); err != nil {
		return errors.Wrap(err, "data.parse_mode")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return errors.Newf("api.port %d outside 1..65535", c.API.Port)
	}
	return nil
}

// Mode returns the validated parse mode. Call Validate first.
func (c *Config) Mode() data.ParseMode {
	m, _ := data.ParseParseMode(c.Data.ParseMode)
	return m
}

// Source returns the month source described by the data section.
func (c *Config) Source() data.FSSource {
	return data.NewDirSource(c.Data.Dir, c.Data.Ext)
}
