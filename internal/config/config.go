// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Package config loads the per-workspace compiler configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"slx/core/i18n"
)

// WorkspaceFileName is the workspace configuration file looked up by
// walking from the working directory towards the filesystem root.
const WorkspaceFileName = "slx.yaml"

// Config is the workspace configuration.
type Config struct {
	// SearchPaths are additional module search roots, in precedence order.
	// Relative entries are resolved against the directory holding the
	// workspace file.
	SearchPaths []string `yaml:"searchPaths"`
	// BundleRoot overrides where bundled resources (the stdlib among them)
	// are looked up. SLX_BUNDLE_ROOT takes precedence over this field.
	BundleRoot string `yaml:"bundleRoot"`
	// StdlibDir overrides the relative directory holding the reserved
	// standard-library modules.
	StdlibDir string `yaml:"stdlibDir"`
}

// Default returns the configuration used when no workspace file exists.
func Default() *Config {

	return &Config{}
}

// Load reads and parses one workspace file. Relative search paths are
// rebased onto the file's directory.
func Load(path string) (cfg *Config, err error) {

	var data []byte
	if data, err = os.ReadFile(path); err != nil {
		err = errors.Wrapf(err, i18n.Msg("cannot read workspace config %s"), path)
		return
	}

	cfg = &Config{}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		cfg = nil
		err = errors.Wrapf(err, i18n.Msg("cannot parse workspace config %s"), path)
		return
	}

	baseDir := filepath.Dir(path)
	for i, searchPath := range cfg.SearchPaths {
		if !filepath.IsAbs(searchPath) {
			cfg.SearchPaths[i] = filepath.Join(baseDir, searchPath)
		}
	}
	if cfg.BundleRoot != "" && !filepath.IsAbs(cfg.BundleRoot) {
		cfg.BundleRoot = filepath.Join(baseDir, cfg.BundleRoot)
	}

	return
}

// Find walks up from startDir looking for the workspace file. It returns
// the empty string when no workspace file exists.
func Find(startDir string) (path string, err error) {

	var dir string
	if dir, err = filepath.Abs(startDir); err != nil {
		err = errors.Wrapf(err, i18n.Msg("cannot resolve directory %s"), startDir)
		return
	}

	for {
		candidate := filepath.Join(dir, WorkspaceFileName)
		var info os.FileInfo
		var statErr error
		if info, statErr = os.Stat(candidate); statErr == nil && !info.IsDir() {
			path = candidate
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// LoadWorkspace finds and loads the workspace configuration for startDir,
// returning defaults (and an empty path) when none exists.
func LoadWorkspace(startDir string) (cfg *Config, path string, err error) {

	if path, err = Find(startDir); err != nil {
		return
	}
	if path == "" {
		cfg = Default()
		return
	}
	cfg, err = Load(path)
	return
}
