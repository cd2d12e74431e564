// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package imports

import (
	"os"
	"path/filepath"
)

const (
	// BundleRootEnv overrides where the program's bundled resources
	// (stdlib sources among them) are looked up.
	BundleRootEnv = "SLX_BUNDLE_ROOT"

	bundleShareDir = "share/slx"
)

// FileSystem is the filesystem capability used by the resolver and the
// importer. Tests substitute an in-memory implementation.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	Getwd() (string, error)
}

type osFileSystem struct{}

// OSFileSystem returns the FileSystem backed by the real OS.
func OSFileSystem() FileSystem {

	return osFileSystem{}
}

func (osFileSystem) Exists(path string) bool {

	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (osFileSystem) ReadFile(path string) ([]byte, error) {

	return os.ReadFile(path)
}

func (osFileSystem) Getwd() (string, error) {

	return os.Getwd()
}

// BundleLocator resolves a relative path against the program's own
// packaged/installed resource set, independent of the working directory.
type BundleLocator interface {
	// Locate returns the absolute candidate path for relPath and whether a
	// bundle root is known at all. Existence is checked by the caller.
	Locate(relPath string) (path string, ok bool)
}

type envBundleLocator struct {
	root string
}

// NewBundleLocator returns a locator rooted at root. An empty root
// disables bundled lookups.
func NewBundleLocator(root string) BundleLocator {

	return envBundleLocator{root: root}
}

// DefaultBundleLocator resolves the bundle root from SLX_BUNDLE_ROOT,
// falling back to <executable dir>/../share/slx for installed layouts.
func DefaultBundleLocator() BundleLocator {

	return envBundleLocator{root: ResolveBundleRoot("")}
}

// ResolveBundleRoot picks the effective bundled-resource root:
// SLX_BUNDLE_ROOT wins, then the configured root, then the root derived
// from the executable location. Empty means bundled lookups are disabled.
func ResolveBundleRoot(configured string) string {

	if root := os.Getenv(BundleRootEnv); root != "" {
		return root
	}
	if configured != "" {
		return configured
	}

	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "..", bundleShareDir)
}

func (l envBundleLocator) Locate(relPath string) (path string, ok bool) {

	if l.root == "" {
		return
	}
	return filepath.Join(l.root, filepath.FromSlash(relPath)), true
}
