// Package installer adds the project's dependencies by running an external
// package manager (yarn or npm) as a child process. The child inherits the
// parent's standard streams so progress is visible live, and its exit code
// is returned to the caller as data rather than as an error.
package installer
