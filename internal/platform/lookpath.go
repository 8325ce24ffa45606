package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// windowsShimExts are probed in order when a bare name is not found on Windows.
var windowsShimExts = []string{".cmd", ".exe", ".bat"}

// IsWindows reports whether the current platform is Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// LookPath resolves name to an executable path. Absolute or relative paths
// containing a separator are checked directly; bare names are searched on
// PATH.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err == nil {
		return path, nil
	}
	if !IsWindows() || filepath.Ext(name) != "" {
		return "", err
	}

	for _, ext := range windowsShimExts {
		if p, shimErr := exec.LookPath(name + ext); shimErr == nil {
			return p, nil
		}
	}
	return "", err
}

// LookPathIn resolves name inside dirs first (in order), then falls back to
// LookPath. It is used for executables installed under node_modules/.bin.
func LookPathIn(name string, dirs ...string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("executable %s: %w", name, err)
		}
		return name, nil
	}

	for _, dir := range dirs {
		candidates := []string{name}
		if IsWindows() && filepath.Ext(name) == "" {
			for _, ext := range windowsShimExts {
				candidates = append(candidates, name+ext)
			}
		}
		for _, c := range candidates {
			p := filepath.Join(dir, c)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
	}
	return LookPath(name)
}
