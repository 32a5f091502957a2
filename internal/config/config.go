// Package config loads serve-mode settings: defaults first, then an
// optional YAML file, then SMSPARSER_* environment overrides. The
// parsing engine itself has no configuration surface; only the HTTP
// wrapper is tunable.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
)

var defaultConfig = []byte(`
application: "sms-parser"

server:
  addr: ":8080"

logger:
  level: "info"
  pretty: false
`)

type Config struct {
	Application string `koanf:"application"`
	Server      Server `koanf:"server"`
	Logger      Logger `koanf:"logger"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Logger struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

// Load builds the effective config. path may be empty.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultConfig), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	err := k.Load(env.Provider("SMSPARSER_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SMSPARSER_")), "_", ".")
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
