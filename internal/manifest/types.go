package manifest

// FileName is the manifest file name inside a package directory.
const FileName = "package.json"

// InitialVersion is the version written into a freshly created project.
const InitialVersion = "0.1.0"

// Package holds the package.json fields this tool reads or writes. Field
// order is the serialization order.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Private bool   `json:"private,omitempty"`
}

// NewProject returns the manifest written at bootstrap time.
func NewProject(name string) *Package {
	return &Package{
		Name:    name,
		Version: InitialVersion,
		Private: true,
	}
}
