// Package pipeline sequences project creation:
//
//	ParsingArgs → ResolvingTemplate → Bootstrapping → Installing → Invoking → Done
//
// with Failed reachable from every non-terminal state. Each stage starts
// only after the previous one has finished. Stage failures abort the run
// and nothing already written to disk is rolled back, so re-running against
// the same directory is the recovery path.
//
// ExitCode maps the returned error onto the process exit code: a failed
// install propagates the package manager's own code unchanged.
package pipeline
