package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the veil configuration.
type Config struct {
	Format        string   `json:"format"`
	InputFormat   string   `json:"inputFormat"`
	Indent        int      `json:"indent"`
	ExtraPatterns []string `json:"extraPatterns,omitempty"`
	SchemaFile    string   `json:"schemaFile,omitempty"`
	Concurrency   int      `json:"concurrency"`
	LogLevel      string   `json:"logLevel"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:      "json",
		InputFormat: "auto",
		Indent:      2,
		Concurrency: 4,
		LogLevel:    "info",
	}
}

// Validate reports the first invalid setting in cfg.
func (c Config) Validate() error {
	switch c.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("format must be json or yaml, got %q", c.Format)
	}
	switch c.InputFormat {
	case "auto", "json", "yaml":
	default:
		return fmt.Errorf("inputFormat must be auto, json or yaml, got %q", c.InputFormat)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logLevel must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for veil.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "veil"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "veil"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "veil"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "veil"), nil
	default:
		return filepath.Join(home, ".config", "veil"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// fileConfig is the on-disk shape of Config. Indent is a pointer so an
// explicit 0 (compact JSON) is told apart from an absent key.
type fileConfig struct {
	Config
	Indent *int `json:"indent,omitempty"`
}

func readFile() (fileConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return fileConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return fc, nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	fc, err := readFile()
	if err != nil {
		return Config{}, err
	}
	cfg := fc.Config
	if fc.Indent != nil {
		cfg.Indent = *fc.Indent
	}
	return cfg, nil
}

// Stored returns the defaults with the config file applied, ignoring the
// environment. It is the starting point for editing the file.
func Stored() (Config, error) {
	fc, err := readFile()
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	mergeFile(&cfg, fc)
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	indent := cfg.Indent
	data, err := json.MarshalIndent(fileConfig{Config: cfg, Indent: &indent}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := Stored()
	if err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, src fileConfig) {
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.InputFormat != "" {
		dst.InputFormat = src.InputFormat
	}
	if src.Indent != nil {
		dst.Indent = *src.Indent
	}
	if len(src.ExtraPatterns) > 0 {
		dst.ExtraPatterns = src.ExtraPatterns
	}
	if src.SchemaFile != "" {
		dst.SchemaFile = src.SchemaFile
	}
	if src.Concurrency > 0 {
		dst.Concurrency = src.Concurrency
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("VEIL_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("VEIL_INPUT_FORMAT"); v != "" {
		cfg.InputFormat = v
	}
	if v := os.Getenv("VEIL_INDENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VEIL_INDENT must be an integer: %w", err)
		}
		cfg.Indent = n
	}
	if v := os.Getenv("VEIL_EXTRA_PATTERNS"); v != "" {
		cfg.ExtraPatterns = SplitList(v)
	}
	if v := os.Getenv("VEIL_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
	if v := os.Getenv("VEIL_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VEIL_CONCURRENCY must be an integer: %w", err)
		}
		cfg.Concurrency = n
	}
	if v := os.Getenv("VEIL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	if overrides == nil {
		return nil
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if key == "extraPatterns" {
			// Flags add to the configured patterns rather than replace them.
			cfg.ExtraPatterns = append(cfg.ExtraPatterns, SplitList(value)...)
			continue
		}
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "format":
		cfg.Format = value
	case "inputFormat":
		cfg.InputFormat = value
	case "indent":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("indent must be an integer: %w", err)
		}
		cfg.Indent = n
	case "extraPatterns":
		cfg.ExtraPatterns = SplitList(value)
	case "schemaFile":
		cfg.SchemaFile = value
	case "concurrency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("concurrency must be an integer: %w", err)
		}
		cfg.Concurrency = n
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SplitList splits a comma-separated list, trimming whitespace and dropping
// empty items.
func SplitList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
