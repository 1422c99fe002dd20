package testing

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/doxybridge/internal/config"
)

// ConfigBuilder provides a fluent interface for creating test configurations.
type ConfigBuilder struct {
	config *config.Config
	t      *testing.T
}

// NewConfigBuilder creates a configuration builder with quiet logging and no projects.
func NewConfigBuilder(t *testing.T) *ConfigBuilder {
	return &ConfigBuilder{
		config: &config.Config{
			Logging: config.LoggingConfig{Level: "error", Format: "text"},
		},
		t: t,
	}
}

// WithProject adds a project reading trees from dir.
func (cb *ConfigBuilder) WithProject(name, dir string) *ConfigBuilder {
	cb.config.Projects = append(cb.config.Projects, config.Project{Name: name, Path: dir})
	return cb
}

// WithNoLink disables cross-reference targets on the most recently added project.
func (cb *ConfigBuilder) WithNoLink() *ConfigBuilder {
	cb.lastProject().NoLink = true
	return cb
}

// WithExcludedProtections filters members by protection level.
func (cb *ConfigBuilder) WithExcludedProtections(prots ...string) *ConfigBuilder {
	cb.config.Filter.ExcludeProtections = append(cb.config.Filter.ExcludeProtections, prots...)
	return cb
}

// WithLogging sets the logging level and format.
func (cb *ConfigBuilder) WithLogging(level, format string) *ConfigBuilder {
	cb.config.Logging = config.LoggingConfig{Level: level, Format: format}
	return cb
}

// WithMetrics toggles the Prometheus recorder.
func (cb *ConfigBuilder) WithMetrics(enabled bool) *ConfigBuilder {
	cb.config.Metrics.Enabled = enabled
	return cb
}

// BuildAndSave builds the configuration and saves it to a file.
func (cb *ConfigBuilder) BuildAndSave(filePath string) *config.Config {
	cb.t.Helper()
	data, err := yaml.Marshal(cb.config)
	if err != nil {
		cb.t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filePath, data, testFilePermissions); err != nil {
		cb.t.Fatalf("Failed to save config to %s: %v", filePath, err)
	}
	return cb.config
}

func (cb *ConfigBuilder) lastProject() *config.Project {
	if len(cb.config.Projects) == 0 {
		cb.t.Fatalf("no project configured")
	}
	return &cb.config.Projects[len(cb.config.Projects)-1]
}

// WriteTrees writes each tree body to dir/<refid>.yaml and returns dir.
func WriteTrees(t *testing.T, dir string, trees map[string]string) string {
	t.Helper()
	if err := os.MkdirAll(dir, testDirPermissions); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	for refid, body := range trees {
		path := filepath.Join(dir, refid+".yaml")
		if err := os.WriteFile(path, []byte(body), testFilePermissions); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return dir
}
