// Package config reads and writes the .ethakka.yaml project manifest. The
// manifest records the choices made at project creation so later generate
// and add invocations resolve the same strategy and feature flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project manifest file name, relative to the project root.
const FileName = ".ethakka.yaml"

// filePerm is the permission for the written manifest.
const filePerm = 0o644

// ErrNotFound indicates the directory is not an ethakka project.
var ErrNotFound = errors.New("no " + FileName + " found: not an ethakka project")

// Config is the persisted project manifest.
type Config struct {
	Name       string `yaml:"name"`
	Database   string `yaml:"database,omitempty"`
	Auth       bool   `yaml:"auth"`
	Crud       bool   `yaml:"crud"`
	CLIVersion string `yaml:"cli_version,omitempty"`
	CreatedAt  string `yaml:"created_at,omitempty"`
}

// Marshal encodes a manifest to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", FileName, err)
	}
	return data, nil
}

// Unmarshal decodes a manifest from YAML.
func Unmarshal(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Exists reports whether root contains a project manifest.
func Exists(root string) bool {
	_, err := os.Stat(filepath.Join(root, FileName))
	return err == nil
}

// Load reads the manifest from root. Returns ErrNotFound when absent.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	return Unmarshal(data)
}

// Save writes the manifest to root.
func Save(root string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(root, FileName), data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", FileName, err)
	}
	return nil
}
