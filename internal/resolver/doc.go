// Package resolver turns the optional template reference given on the
// command line into an installable locator plus display metadata.
//
// Three shapes are recognised: no reference (the configured fallback
// template), a local-file reference ("file:<path>", resolved against the
// directory the user invoked the tool from and read from disk), and any
// other string, passed through to the package manager untouched. The
// resolver never touches the network.
package resolver
