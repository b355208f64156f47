package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvPath names the environment variable that overrides the config location.
	EnvPath = "EXPERT_SPOON_CONFIG"
	// DefaultFileName is looked up in the user's home directory.
	DefaultFileName = ".expert-spoon.yaml"
	// SupportedVersion is the only accepted value of the version field.
	SupportedVersion = 1
)

var (
	ErrNotFound           = errors.New("config file not found")
	ErrUnsupportedVersion = errors.New("unsupported config version")
)

// ActionType tags the variant of a configured action.
type ActionType string

const (
	ActionOpen ActionType = "open"
)

// ActionConfig is the YAML form of an action.
type ActionConfig struct {
	Type    ActionType `yaml:"type"`
	Command string     `yaml:"command"`
	Args    []string   `yaml:"args"`
}

// Hotkey describes one shortcut. Order in the file is display order in the tray.
type Hotkey struct {
	Key    string       `yaml:"key"`
	Name   string       `yaml:"name"`
	Action ActionConfig `yaml:"action"`
}

// Config represents the configuration file.
type Config struct {
	Version int      `yaml:"version"`
	Icon    string   `yaml:"icon,omitempty"`
	Hotkeys []Hotkey `yaml:"hotkeys"`
}

// DefaultPath returns ~/.expert-spoon.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home dir: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Candidates lists the locations checked for a config file, in priority order:
// the path from EXPERT_SPOON_CONFIG when set, then the home directory default.
func Candidates() []string {
	var paths []string
	if custom := strings.TrimSpace(os.Getenv(EnvPath)); custom != "" {
		paths = append(paths, custom)
	}
	if def, err := DefaultPath(); err == nil {
		paths = append(paths, def)
	}
	return paths
}

// Find returns the first path that exists.
func Find(paths []string) (string, error) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: set %s or create ~/%s", ErrNotFound, EnvPath, DefaultFileName)
}

// Load locates, reads and validates the configuration. The resolved path is
// returned alongside the config for diagnostics.
func Load() (*Config, string, error) {
	path, err := Find(Candidates())
	if err != nil {
		return nil, "", err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// LoadFile reads and validates the configuration stored at path.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("process config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML and validates the result. Unknown fields are ignored.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("config is empty")
		}
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks the version and the required fields of every hotkey.
func (c *Config) Validate() error {
	if c.Version != SupportedVersion {
		return fmt.Errorf("%w %d, please use: %d", ErrUnsupportedVersion, c.Version, SupportedVersion)
	}
	for i, hk := range c.Hotkeys {
		if err := hk.validate(); err != nil {
			return fmt.Errorf("hotkey #%d %q: %w", i+1, hk.Name, err)
		}
	}
	return nil
}

func (h Hotkey) validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(h.Key) == "" {
		return errors.New("missing key")
	}
	return h.Action.Validate()
}

// Validate checks that the action type is known and its fields are present.
func (a ActionConfig) Validate() error {
	switch a.Type {
	case ActionOpen:
		if strings.TrimSpace(a.Command) == "" {
			return errors.New("open action requires a command")
		}
	case "":
		return errors.New("action type is required")
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}
