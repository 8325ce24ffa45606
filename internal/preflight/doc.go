// Package preflight probes the external tools a project creation depends on
// (Node.js and the selected package manager) and checks their versions
// against semver constraints. Results feed both the create command, which
// warns on outdated tools and aborts on missing ones, and the doctor
// command.
package preflight
