package cli

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// Element types a session can hold.
const (
	ElemInt    = "int"
	ElemString = "string"
)

// maxCapacity caps capacities and counts read from user input. Larger values
// are rejected before they reach the vector.
const maxCapacity = 1 << 24

// ConfigFileName is the default project config file name.
const ConfigFileName = ".vec.json"

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Elem     string `json:"elem"`
	Prompt   string `json:"prompt,omitempty"`
	History  string `json:"history,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Dump     bool   `json:"dump,omitempty"`

	// Resolved (computed, not serialized)
	WorkDir string        `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	Sources ConfigSources `json:"-"` // Which config files were loaded (for diagnostics)
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Elem:   ElemInt,
		Prompt: "vec> ",
	}
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDir      string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath   string            // -c/--config flag value
	ElemOverride string            // --elem flag value; empty means not set
	Env          map[string]string // environment, for XDG_CONFIG_HOME and HOME
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/vec/config.json or ~/.config/vec/config.json)
// 3. Project config file (.vec.json in the work directory, if it exists)
// 4. Explicit config file via ConfigPath (must exist)
// 5. CLI overrides.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}

		workDir = wd
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := DefaultConfig()

	if globalPath := globalConfigPath(input.Env); globalPath != "" {
		globalCfg, loaded, err := loadConfigFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg = mergeConfig(cfg, globalCfg)
			cfg.Sources.Global = globalPath
		}
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if input.ConfigPath != "" {
		projectPath = input.ConfigPath
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}

		mustExist = true
	}

	projectCfg, loaded, err := loadConfigFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg = mergeConfig(cfg, projectCfg)
		cfg.Sources.Project = projectPath
	}

	if input.ElemOverride != "" {
		cfg.Elem = input.ElemOverride
	}

	cfg.WorkDir = workDir

	if cfg.History == "" {
		cfg.History = defaultHistoryPath(input.Env)
	}

	err = validateConfig(cfg)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// globalConfigPath returns the path to the global config file.
// Returns empty string if neither XDG_CONFIG_HOME nor HOME is set.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "vec", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "vec", "config.json")
	}

	return ""
}

func defaultHistoryPath(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".vec_history")
	}

	return ""
}

// loadConfigFile loads a config file. If mustExist is false, missing files
// return zero config. Returns the config, whether the file was loaded, and
// any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", errConfigFileRead, path)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.Elem != "" {
		base.Elem = overlay.Elem
	}

	if overlay.Prompt != "" {
		base.Prompt = overlay.Prompt
	}

	if overlay.History != "" {
		base.History = overlay.History
	}

	if overlay.Capacity != 0 {
		base.Capacity = overlay.Capacity
	}

	if overlay.Dump {
		base.Dump = true
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.Elem != ElemInt && cfg.Elem != ElemString {
		return fmt.Errorf("%w: %q", errUnknownElem, cfg.Elem)
	}

	if cfg.Capacity < 0 {
		return errNegativeCapacity
	}

	if cfg.Capacity > maxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds %d", errConfigInvalid, cfg.Capacity, maxCapacity)
	}

	return nil
}

// FormatConfig returns the serialized part of the config as indented JSON.
func FormatConfig(cfg Config) (string, error) {
	data, err := json.MarshalIndentWithOption(cfg, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return "", fmt.Errorf("failed to format config: %w", err)
	}

	return string(data), nil
}
