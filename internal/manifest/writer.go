package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal serializes p with 2-space indentation and a trailing newline.
func Marshal(p *Package) ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(out, '\n'), nil
}

// WriteDir writes p to <dir>/package.json, replacing any existing file.
// Nothing from a previous manifest survives.
func WriteDir(dir string, p *Package) (string, error) {
	data, err := Marshal(p)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
