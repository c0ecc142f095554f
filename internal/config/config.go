package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up when --config is not given.
const DefaultConfigFile = "docdraft.yaml"

// Config represents the application configuration.
type Config struct {
	// Root is the build root. All VCS commands run with this as working directory.
	Root string `yaml:"root"`
	// DocsDir is the documentation source subtree, relative to Root.
	DocsDir string `yaml:"docs_dir"`
	// Repo is the repository identifier known to the host build, used as the
	// lowest-priority repository source for validation.
	Repo       string        `yaml:"repo,omitempty"`
	Extensions []string      `yaml:"extensions"`
	Git        GitConfig     `yaml:"git"`
	Output     OutputConfig  `yaml:"output"`
	Logging    LoggingConfig `yaml:"logging"`
	Metrics    MetricsConfig `yaml:"metrics"`
	Draft      Draft         `yaml:"draft"`
}

// GitConfig selects how version control is queried.
type GitConfig struct {
	Backend GitBackend `yaml:"backend"`
	Binary  string     `yaml:"binary"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string       `yaml:"directory"`
	Format    OutputFormat `yaml:"format"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig configures optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Default returns a configuration populated with defaults.
func Default() *Config {
	return &Config{
		Root:       ".",
		DocsDir:    "docs",
		Extensions: []string{".md", ".markdown"},
		Git:        GitConfig{Backend: GitBackendCLI, Binary: "git"},
		Output:     OutputConfig{Directory: "./site", Format: OutputFormatHTML},
		Logging:    LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Draft:      DefaultDraft(),
	}
}

// Load loads configuration from the specified file.
//
// Environment variables from .env/.env.local are loaded first (without
// overriding the process environment) and ${VAR} references in the YAML are
// expanded before decoding. Values absent from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NewError(ferrors.CategoryNotFound, "configuration file not found").
				Fatal().
				WithContext("path", configPath).
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	if cfg.Draft.DeployConfig == nil && cfg.Draft.DeployConfigFile != "" {
		deployPath := cfg.Draft.DeployConfigFile
		if !filepath.IsAbs(deployPath) {
			deployPath = filepath.Join(filepath.Dir(configPath), deployPath)
		}
		dc, err := LoadDeployConfig(deployPath)
		if err != nil {
			return nil, err
		}
		cfg.Draft.DeployConfig = dc
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptional behaves like Load but falls back to defaults when the file does not exist.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		loadEnvFiles()
		cfg := Default()
		cfg.Normalize()
		return cfg, cfg.Validate()
	}
	return Load(configPath)
}

// LoadDeployConfig reads a deploy configuration shared with the deployment step.
func LoadDeployConfig(path string) (*DeployConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read deploy config").
			Fatal().
			WithContext("path", path).
			Build()
	}
	var dc DeployConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &dc); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal deploy config").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return &dc, nil
}
