package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
)

// Config represents the application configuration.
type Config struct {
	Projects []Project     `yaml:"projects"`
	Default  string        `yaml:"default_project,omitempty"`
	Filter   FilterConfig  `yaml:"filter,omitempty"`
	Metrics  MetricsConfig `yaml:"metrics,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
}

// Project describes one set of extracted documentation trees.
type Project struct {
	Name string `yaml:"name"`
	// Path is the directory holding the index tree and one tree file per compound.
	Path string `yaml:"path"`
	// Index is the index tree file name inside Path.
	Index string `yaml:"index,omitempty"`
	// NoLink disables cross-reference targets for this project.
	NoLink bool `yaml:"no_link,omitempty"`
	// ExplainParseErrors appends the encoding note to parse failure warnings.
	ExplainParseErrors bool `yaml:"explain_parse_errors,omitempty"`
	// DomainByExtension maps file extensions to a language domain ("py" -> "py").
	DomainByExtension map[string]string `yaml:"domain_by_extension,omitempty"`
}

// FilterConfig lists exclusion rules applied along a node's ancestor path.
type FilterConfig struct {
	ExcludeNodeTypes     []string `yaml:"exclude_node_types,omitempty"`
	ExcludeCompoundKinds []string `yaml:"exclude_compound_kinds,omitempty"`
	ExcludeMemberKinds   []string `yaml:"exclude_member_kinds,omitempty"`
	ExcludeProtections   []string `yaml:"exclude_protections,omitempty"`
	ExcludeNames         []string `yaml:"exclude_names,omitempty"`
}

// MetricsConfig toggles the Prometheus recorder.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // "text" or "json"
}

// Key identifies the project configuration for caches scoped to it.
func (p *Project) Key() string {
	return p.Name + "\x00" + p.Path
}

// Domain returns the language domain configured for a file extension.
func (p *Project) Domain(ext string) (string, bool) {
	d, ok := p.DomainByExtension[ext]
	return d, ok
}

// Project looks up a project by name. An empty name selects the default project.
func (c *Config) Project(name string) (*Project, error) {
	if name == "" {
		name = c.Default
	}
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i], nil
		}
	}
	return nil, errors.NewError(errors.CategoryNotFound, "project not found").
		WithContext("project", name).
		Build()
}

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	return Parse([]byte(os.ExpandEnv(string(data))))
}

// Parse decodes, defaults and validates configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").Fatal().Build()
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", configPath)).Build()
	}

	example := Config{
		Projects: []Project{
			{
				Name:               "core",
				Path:               "./doxygen/core",
				Index:              DefaultIndexFile,
				ExplainParseErrors: true,
				DomainByExtension:  map[string]string{"py": "py"},
			},
		},
		Default: "core",
		Filter: FilterConfig{
			ExcludeProtections:   []string{"private"},
			ExcludeCompoundKinds: []string{"dir"},
		},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal config").Build()
	}
	// #nosec G306 -- config file is meant to be user-readable.
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// loadEnvFile loads the first .env file found. Variables already set in the
// environment win.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}
}
