// Package workspace locates installed npm packages for a project, in
// particular the package that ships locale data files.
package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bennypowers.dev/ngl10n/internal/log"
	"github.com/tidwall/jsonc"
)

// CommonPackage is the npm package that ships the locale data files
const CommonPackage = "@angular/common"

// maxUpwardSearchLevels limits how far up the directory tree node_modules is searched
const maxUpwardSearchLevels = 10

// ErrPackageNotFound indicates no node_modules directory contains the package
var ErrPackageNotFound = errors.New("package not found")

// PackageNotFoundError reports a package missing from every node_modules searched
type PackageNotFoundError struct {
	Package string
	From    string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s in any node_modules above %s\nSuggestion: run npm install, or set locales_dir explicitly", e.Package, e.From)
}

func (e *PackageNotFoundError) Unwrap() error {
	return ErrPackageNotFound
}

// Package is an installed npm package
type Package struct {
	Name    string
	Version string
	// Dir is the absolute package directory
	Dir string
}

// LocalesDir returns the directory holding per-locale data files
func (p *Package) LocalesDir() string {
	return filepath.Join(p.Dir, "locales")
}

// FindPackage looks for node_modules/<name>/package.json in startDir and its
// parents, the way Node resolves bare imports.
func FindPackage(startDir, name string) (*Package, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	dir := abs
	for range maxUpwardSearchLevels {
		pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
		pkg, err := readPackage(pkgDir)
		if err != nil {
			return nil, err
		}
		if pkg != nil {
			if pkg.Name != "" && pkg.Name != name {
				log.Warn("%s declares name %q, expected %q", pkgDir, pkg.Name, name)
			}
			log.Debug("found %s %s in %s", name, pkg.Version, pkg.Dir)
			return pkg, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, &PackageNotFoundError{Package: name, From: abs}
}

// readPackage reads package.json from dir. It returns nil, nil when the
// file does not exist.
func readPackage(dir string) (*Package, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path) //nolint:gosec // G304: reading package.json from the project's own node_modules
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var manifest struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &Package{Name: manifest.Name, Version: manifest.Version, Dir: dir}, nil
}
