package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "HERMES_"

// Load merges the YAML configuration file and HERMES_* environment
// variables into cfg. Environment values win over file values; struct
// defaults (set by New) fill whatever neither provides. A double
// underscore separates nesting levels, e.g. HERMES_PROXY__LISTEN maps to
// proxy.listen.
func Load(filename string, cfg *Config) error {
	k := koanf.New(".")

	if filename != "" {
		if err := k.Load(file.Provider(filename), yaml.Parser()); err != nil {
			return err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return err
	}

	return k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "yaml"})
}
