// Package home manages the grimoire home directory layout.
package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the grimoire home directory.
	DefaultDirName = ".grimoire"

	// SourcesDirName is the subdirectory for extracted document text.
	SourcesDirName = "sources"

	// ExportsDirName is the subdirectory for exported record files.
	ExportsDirName = "exports"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the grimoire home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.grimoire).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// SourcesPath returns the path to the extracted-text directory.
func (d *Dir) SourcesPath() string {
	return filepath.Join(d.path, SourcesDirName)
}

// ExportsPath returns the path to the exports directory.
func (d *Dir) ExportsPath() string {
	return filepath.Join(d.path, ExportsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't
// exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.SourcesPath(), d.ExportsPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// SourceTextPath returns the path to a document's extracted text file.
func (d *Dir) SourceTextPath(documentID string) string {
	return filepath.Join(d.SourcesPath(), fmt.Sprintf("%s.txt", documentID))
}

// ExportPath returns the path for one exported record file.
func (d *Dir) ExportPath(name string) string {
	return filepath.Join(d.ExportsPath(), name)
}
