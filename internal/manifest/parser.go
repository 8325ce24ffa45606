package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Parse decodes manifest bytes. Comments and trailing commas are tolerated.
func Parse(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	return &p, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*Package, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseDir reads <dir>/package.json.
func ParseDir(dir string) (*Package, error) {
	return ParseFile(filepath.Join(dir, FileName))
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
