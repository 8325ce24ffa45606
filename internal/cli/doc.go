// Package cli defines the Cobra command tree for the create-react-app CLI.
// The root command creates a project; version, config and doctor are
// registered as subcommands. Commands delegate to internal packages for the
// work and only handle flag parsing, output formatting and exit codes.
package cli
