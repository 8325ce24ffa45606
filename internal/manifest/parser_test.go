package manifest

import (
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		file    string
		name    string
		version string
	}{
		{"valid-template.json", "cra-template-local", "1.2.3"},
		{"commented-template.json", "cra-template-commented", "2.0.0-beta.1"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			p, err := ParseFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ParseFile(%s) error: %v", tt.file, err)
			}
			if p.Name != tt.name {
				t.Errorf("Name = %q, want %q", p.Name, tt.name)
			}
			if p.Version != tt.version {
				t.Errorf("Version = %q, want %q", p.Version, tt.version)
			}
		})
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.json"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParseFile_NotJSON(t *testing.T) {
	_, err := ParseFile(testPath("invalid-not-json.json"))
	if err == nil {
		t.Fatal("expected error for malformed manifest, got nil")
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteDir(dir, &Package{Name: "x", Version: "1.2.3"}); err != nil {
		t.Fatal(err)
	}

	p, err := ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir error: %v", err)
	}
	if p.Name != "x" || p.Version != "1.2.3" {
		t.Errorf("ParseDir = %+v, want name=x version=1.2.3", p)
	}
}
