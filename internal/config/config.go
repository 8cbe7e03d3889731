package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "fibgen.yaml"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverNone   = "none"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds all fibgen configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	MCP    MCPConfig    `yaml:"mcp" mapstructure:"mcp"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
}

// LogConfig configures the slog logger used by the server commands.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
	// MaxTerms caps the term count a single request may ask for. Zero disables the cap.
	MaxTerms int `yaml:"max_terms" mapstructure:"max_terms"`
}

// MCPConfig configures the MCP server.
type MCPConfig struct {
	Transport string `yaml:"transport" mapstructure:"transport"`
	Port      int    `yaml:"port" mapstructure:"port"`
}

// StoreConfig selects and configures the request journal backend.
type StoreConfig struct {
	Driver        string        `yaml:"driver" mapstructure:"driver"`
	Path          string        `yaml:"path" mapstructure:"path"`
	RedisAddr     string        `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisPassword string        `yaml:"redis_password" mapstructure:"redis_password"`
	RedisDB       int           `yaml:"redis_db" mapstructure:"redis_db"`
	TTL           time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// envKeys maps environment variables to their config path.
var envKeys = map[string][2]string{
	"FIBGEN_LOG_LEVEL":            {"log", "level"},
	"FIBGEN_SERVER_PORT":          {"server", "port"},
	"FIBGEN_SERVER_MAX_TERMS":     {"server", "max_terms"},
	"FIBGEN_MCP_TRANSPORT":        {"mcp", "transport"},
	"FIBGEN_MCP_PORT":             {"mcp", "port"},
	"FIBGEN_STORE_DRIVER":         {"store", "driver"},
	"FIBGEN_STORE_PATH":           {"store", "path"},
	"FIBGEN_STORE_REDIS_ADDR":     {"store", "redis_addr"},
	"FIBGEN_STORE_REDIS_PASSWORD": {"store", "redis_password"},
	"FIBGEN_STORE_REDIS_DB":       {"store", "redis_db"},
	"FIBGEN_STORE_TTL":            {"store", "ttl"},
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Port:     8080,
			MaxTerms: 10000,
		},
		MCP: MCPConfig{
			Transport: TransportStdio,
			Port:      8081,
		},
		Store: StoreConfig{
			Driver:    DriverMemory,
			Path:      ".fibgen/history",
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// FIBGEN_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := ApplyEnv(cfg, os.Environ()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with the FIBGEN_* entries found in environ ("KEY=value" pairs).
// Values are weakly typed: "8080" decodes into an int and "30s" into a duration.
func ApplyEnv(cfg *Config, environ []string) error {
	raw := map[string]any{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		path, known := envKeys[key]
		if !known {
			continue
		}
		section, _ := raw[path[0]].(map[string]any)
		if section == nil {
			section = map[string]any{}
			raw[path[0]] = section
		}
		section[path[1]] = value
	}
	if len(raw) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to build env decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	return nil
}

// Validate checks the enumerations and ranges.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverFile, DriverRedis, DriverNone:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("unknown mcp transport %q", c.MCP.Transport)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("invalid mcp port %d", c.MCP.Port)
	}
	if c.Server.MaxTerms < 0 {
		return fmt.Errorf("server.max_terms cannot be negative")
	}
	if c.Store.TTL < 0 {
		return fmt.Errorf("store.ttl cannot be negative")
	}
	return nil
}
