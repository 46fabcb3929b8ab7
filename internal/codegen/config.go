package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the target directory, then the module root.
const ConfigFileName = ".erreport.yaml"

const (
	DefaultVersion = "0.0.0"
	DefaultOutput  = "report_gen.go"
)

// Config is the on-disk .erreport.yaml.
type Config struct {
	Component ComponentConfig `yaml:"component"`
	Policy    string          `yaml:"policy,omitempty"`
	Package   string          `yaml:"package,omitempty"`
	Output    string          `yaml:"output,omitempty"`
	Import    string          `yaml:"import,omitempty"`
}

// ComponentConfig holds the identity compiled into generated files.
type ComponentConfig struct {
	Name    string `yaml:"name,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// LoadConfig reads a config file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := wrapValue(os.ReadFile(path))
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, wrap(fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err))
	}
	return cfg, nil
}

// findConfig returns the first config file found in dirs, or "".
func findConfig(dirs ...string) string {
	for _, dir := range dirs {
		p := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// merge overlays non-empty fields of o onto c.
func (c *Config) merge(o Config) {
	if o.Component.Name != "" {
		c.Component.Name = o.Component.Name
	}
	if o.Component.Version != "" {
		c.Component.Version = o.Component.Version
	}
	if o.Policy != "" {
		c.Policy = o.Policy
	}
	if o.Package != "" {
		c.Package = o.Package
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.Import != "" {
		c.Import = o.Import
	}
}

func validateOutput(name string) error {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return fmt.Errorf("%w: output %q must be a file name in the package directory", ErrInvalidConfig, name)
	}
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return fmt.Errorf("%w: output %q must be a non-test .go file", ErrInvalidConfig, name)
	}
	return nil
}

func validateImport(path string) error {
	if err := module.CheckImportPath(path); err != nil {
		return fmt.Errorf("%w: import path: %v", ErrInvalidConfig, err)
	}
	return nil
}

func validateIdentity(name, version string) error {
	for _, s := range []string{name, version} {
		if strings.ContainsAny(s, "{}@\"\\\n\r\t") {
			return fmt.Errorf("%w: component identity %q contains reserved characters", ErrInvalidConfig, s)
		}
	}
	if name == "" {
		return fmt.Errorf("%w: component name is empty", ErrInvalidConfig)
	}
	return nil
}
