package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/santikid/clink/pkg/errors"
	"github.com/santikid/clink/pkg/features"
	"github.com/santikid/clink/pkg/logging"
)

// EnvPrefix marks environment variables that override config values.
const EnvPrefix = "CLINK_"

// Candidates are the config file names looked up in the working directory,
// in order, when no explicit path is given.
var Candidates = []string{"clink.yaml", "clink.yml", ".clink.yaml", "clink.toml"}

// envKeys are the settings environment variables may override.
var envKeys = map[string]bool{
	"leave_orphans": true,
}

// Config is the loaded configuration.
type Config struct {
	// Features is the registry, in match priority order.
	Features features.FeatureList `koanf:"features"`

	// LeaveOrphans is the default for unlink's --leave-orphans.
	LeaveOrphans bool `koanf:"leave_orphans"`

	// Path is the file the configuration was read from.
	Path string `koanf:"-"`
}

// Load builds the configuration for the working directory dir. If path is
// empty the first existing Candidates entry in dir is used; a relative path
// is taken relative to dir.
func Load(dir, path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(getSystemDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. Config file
	configPath, err := findConfigFile(dir, path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", configPath).
			WithDetail("path", configPath)
	}
	logger.Debug().Str("path", configPath).Msg("Loaded config file")

	// 3. Environment overrides
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !envKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				ruleHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid config %s", configPath).
			WithDetail("path", configPath)
	}
	cfg.Path = configPath

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", configPath).
		Int("features", len(cfg.Features)).
		Bool("leave_orphans", cfg.LeaveOrphans).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Validate checks the feature registry. Every feature must name its
// enablement rule explicitly.
func (c *Config) Validate() error {
	for _, f := range c.Features {
		if f.Enabled.Kind == "" {
			return errors.Newf(errors.ErrConfigValid, "feature %q has no enabled rule", f.Slug).
				WithDetail("slug", f.Slug)
		}
	}
	return c.Features.Validate()
}

func findConfigFile(dir, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	for _, name := range Candidates {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigLoad, "no config file found in %s (looked for %s)",
		dir, strings.Join(Candidates, ", ")).
		WithDetail("dir", dir)
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Parser()
	}
	return yaml.Parser()
}

func getSystemDefaults() map[string]interface{} {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return map[string]interface{}{}
	}
	return k.All()
}

var ruleType = reflect.TypeOf(features.Rule{})

const (
	ruleKeyCommand = string(features.RuleCommand)
	ruleKeyArgs    = "args"
)

// ruleHookFunc decodes an enablement rule from its text form ("macos",
// "command:foo") or from a map ({command: foo, args: "-d /opt"}). The command
// is always taken literally; only args, given as a string or a list, are
// split into words.
func ruleHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != ruleType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return features.ParseRule(v)
		case map[string]interface{}:
			return decodeCommandRule(v)
		}
		return data, nil
	}
}

func decodeCommandRule(v map[string]interface{}) (features.Rule, error) {
	for key := range v {
		if key != ruleKeyCommand && key != ruleKeyArgs {
			return features.Rule{}, errors.Newf(errors.ErrConfigValid, "unknown enablement rule %q", key)
		}
	}

	cmd, ok := v[ruleKeyCommand].(string)
	if !ok || strings.TrimSpace(cmd) == "" {
		return features.Rule{}, errors.New(errors.ErrConfigValid, "command rule requires a command")
	}

	var args []string
	switch a := v[ruleKeyArgs].(type) {
	case nil:
	case string:
		split, err := features.SplitArgs(a)
		if err != nil {
			return features.Rule{}, err
		}
		args = split
	case []interface{}:
		for _, item := range a {
			s, ok := item.(string)
			if !ok {
				return features.Rule{}, errors.Newf(errors.ErrConfigValid, "command argument %v is not a string", item)
			}
			args = append(args, s)
		}
	default:
		return features.Rule{}, errors.Newf(errors.ErrConfigValid, "command args must be a string or a list, got %T", a)
	}

	return features.WhenCommand(strings.TrimSpace(cmd), args...), nil
}
