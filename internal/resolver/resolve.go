package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/agentx-labs/create-react-app/internal/manifest"
)

// FilePrefix marks a local-file template reference.
const FilePrefix = "file:"

// Template is a resolved template package.
type Template struct {
	// Locator is what the package manager is asked to install: a registry
	// name or "file:<absolute path>".
	Locator string
	// DisplayName is the package name handed to the initializer.
	DisplayName string
	// Version is known only for local templates.
	Version string
}

// IsLocal reports whether the template is installed from the filesystem.
func (t *Template) IsLocal() bool {
	return IsLocalReference(t.Locator)
}

// Path returns the filesystem path of a local template, or "".
func (t *Template) Path() string {
	if !t.IsLocal() {
		return ""
	}
	return strings.TrimPrefix(t.Locator, FilePrefix)
}

// NotFoundError reports a local template whose manifest could not be read
// or is not usable.
type NotFoundError struct {
	Reference string
	Path      string
	Err       error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found at %s: %v", e.Reference, e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Resolver resolves template references.
type Resolver struct {
	// Fallback is installed when no reference is given.
	Fallback string
}

// New returns a Resolver using fallback as the default template package.
func New(fallback string) *Resolver {
	return &Resolver{Fallback: fallback}
}

// IsLocalReference reports whether ref uses the local-file prefix.
func IsLocalReference(ref string) bool {
	return strings.HasPrefix(ref, FilePrefix)
}

// Resolve determines the install locator for ref. Relative local paths are
// resolved against originalDir. An empty ref selects the fallback.
func (r *Resolver) Resolve(ref, originalDir string) (*Template, error) {
	if ref == "" {
		return &Template{Locator: r.Fallback, DisplayName: r.Fallback}, nil
	}

	if !IsLocalReference(ref) {
		return &Template{Locator: ref, DisplayName: ref}, nil
	}

	path := strings.TrimPrefix(ref, FilePrefix)
	if !filepath.IsAbs(path) {
		path = filepath.Join(originalDir, path)
	}
	path = filepath.Clean(path)

	info, err := readTemplateManifest(path)
	if err != nil {
		return nil, &NotFoundError{Reference: ref, Path: path, Err: err}
	}

	return &Template{
		Locator:     FilePrefix + path,
		DisplayName: info.Name,
		Version:     info.Version,
	}, nil
}

// readTemplateManifest loads the template's own package.json and checks
// that it names the package and carries a usable version.
func readTemplateManifest(dir string) (*manifest.Package, error) {
	p, err := manifest.ParseDir(dir)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%s has no name", manifest.FileName)
	}
	if p.Version != "" {
		if _, err := semver.StrictNewVersion(p.Version); err != nil {
			return nil, fmt.Errorf("%s version %q: %w", manifest.FileName, p.Version, err)
		}
	}
	return p, nil
}
