// Package manifest reads, writes and validates package.json manifests. The
// bootstrapper writes the initial project manifest through it and the
// template resolver reads local template manifests through it. Validation
// runs against an embedded JSON Schema enforcing the package-name and
// version rules the package managers apply.
package manifest
