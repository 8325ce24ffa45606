package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/create-react-app/internal/manifest"
)

// Project describes a bootstrapped project. It is passed by value to the
// installer and the delegated initializer.
type Project struct {
	Root              string // absolute project directory
	AppName           string // manifest name
	OriginalDirectory string // directory the tool was invoked from
	TemplateName      string // display name of the resolved template
	ManifestPath      string // <Root>/package.json
}

// DirectoryError reports a target that cannot be used as a project root:
// it exists as a non-directory, or it cannot be created or written.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("cannot create project directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// ErrNotDirectory is wrapped by DirectoryError when the target exists as a file.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// RootPath resolves target to an absolute path against originalDir.
func RootPath(target, originalDir string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(originalDir, target)
}

// AppName derives the manifest name from target: the last path element.
// For a plain directory name this is the name itself.
func AppName(target string) string {
	return filepath.Base(filepath.Clean(target))
}

// ValidateName checks that the manifest for target would be valid, without
// touching the filesystem.
func ValidateName(target string) error {
	result, err := manifest.ValidatePackage(manifest.NewProject(AppName(target)))
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("cannot create a project named %q because of npm naming restrictions: %s",
			AppName(target), result.Summary())
	}
	return nil
}

// Bootstrap creates the project directory for target (resolved against
// originalDir) and writes its manifest, overwriting any existing one.
func Bootstrap(target, originalDir string) (Project, error) {
	root := RootPath(target, originalDir)

	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return Project{}, &DirectoryError{Path: root, Err: ErrNotDirectory}
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return Project{}, &DirectoryError{Path: root, Err: err}
	}

	appName := AppName(target)
	manifestPath, err := manifest.WriteDir(root, manifest.NewProject(appName))
	if err != nil {
		return Project{}, &DirectoryError{Path: root, Err: err}
	}

	return Project{
		Root:              root,
		AppName:           appName,
		OriginalDirectory: originalDir,
		ManifestPath:      manifestPath,
	}, nil
}
