package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/rail44/lessons/internal/log"
)

// FileName is the config file looked up from the working directory upward
const FileName = "lessons.toml"

// Config represents the complete configuration for lessons
type Config struct {
	LogLevel string `toml:"log_level"`
	Plain    bool   `toml:"plain"`    // disable styled output
	Farewell string `toml:"farewell"` // printed when the menu quits, ${VAR} expanded
	PiTerms  int    `toml:"pi_terms"` // default term count for `lessons pi`

	// Path of the file the values came from, empty when defaults were used
	Source string `toml:"-"`
}

var errNotFound = errors.New(FileName + " not found")

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Default returns the configuration used when no lessons.toml exists
func Default() *Config {
	return &Config{
		LogLevel: string(log.LevelInfo),
		Farewell: "Goodbye!",
		PiTerms:  1000,
	}
}

// Load searches for lessons.toml starting at startPath and walking up to the
// filesystem root. A missing file is not an error; defaults are returned.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if errors.Is(err, errNotFound) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

// LoadFile reads the given TOML file on top of the defaults
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Override applies values set through flags or LESSONS_* environment
// variables. Keys are log_level, plain, farewell and pi_terms.
func (c *Config) Override(v *viper.Viper) error {
	if v.IsSet("log_level") {
		c.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("plain") {
		c.Plain = v.GetBool("plain")
	}
	if v.IsSet("farewell") {
		c.Farewell = v.GetString("farewell")
	}
	if v.IsSet("pi_terms") {
		c.PiTerms = v.GetInt("pi_terms")
	}
	return c.validate()
}

// Level returns the parsed log level
func (c *Config) Level() log.LogLevel {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// FarewellMessage returns Farewell with ${VAR} references expanded
func (c *Config) FarewellMessage() string {
	return expandEnvVars(c.Farewell)
}

// findConfigFile searches for lessons.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", errNotFound
		}
		currentDir = parentDir
	}
}

// expandEnvVars expands ${VAR_NAME} references, leaving unset ones as written
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		value := os.Getenv(match[2 : len(match)-1])
		if value == "" {
			return match
		}
		return value
	})
}

// validate checks field values
func (c *Config) validate() error {
	var problems []string

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if c.PiTerms < 0 {
		problems = append(problems, "pi_terms must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}
