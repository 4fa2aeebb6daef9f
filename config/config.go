package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/masmgr/commitgraph-go/internal/git"
	"github.com/masmgr/commitgraph-go/internal/graph"
)

// DefaultServerAddr is the loopback address the local API listens on.
const DefaultServerAddr = "127.0.0.1:7420"

// defaultFileNames are probed, in order, in the working directory and then
// in the home directory when no explicit path is given.
var defaultFileNames = []string{".commitgraph.json", ".commitgraph.yaml", ".commitgraph.yml"}

// Config is the root configuration structure.
type Config struct {
	Graph   GraphConfig  `json:"graph" yaml:"graph"`
	Diff    DiffConfig   `json:"diff" yaml:"diff"`
	Filters FilterConfig `json:"filters" yaml:"filters"`
	Server  ServerConfig `json:"server" yaml:"server"`
}

// GraphConfig holds commit graph extraction options.
type GraphConfig struct {
	WindowSize int `json:"windowSize" yaml:"windowSize"` // Default: 2000
}

// DiffConfig holds file change listing options.
type DiffConfig struct {
	RenameDetect string `json:"renameDetect" yaml:"renameDetect"` // off | simple | aggressive
}

// FilterConfig holds file path filtering options.
type FilterConfig struct {
	Include []string `json:"include" yaml:"include"`
	Exclude []string `json:"exclude" yaml:"exclude"`
}

// ServerConfig holds local API options.
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			WindowSize: graph.DefaultWindow,
		},
		Diff: DiffConfig{
			RenameDetect: git.RenameDetectSimple.String(),
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
	}
}

// DiffOptions converts the diff and filter sections into repository diff options.
func (c *Config) DiffOptions() (git.DiffOptions, error) {
	mode, err := git.ParseRenameDetectMode(c.Diff.RenameDetect)
	if err != nil {
		return git.DiffOptions{}, err
	}
	return git.DiffOptions{
		Include:      c.Filters.Include,
		Exclude:      c.Filters.Exclude,
		RenameDetect: mode,
	}, nil
}

// LoadConfig loads configuration from a file, merging with defaults.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findDefaultFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

func findDefaultFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, name := range defaultFileNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// SaveConfig saves configuration to a file as JSON.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
