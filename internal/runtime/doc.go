// Package runtime hands a freshly installed project over to the build
// tooling's initializer. Two runtimes implement the hand-off contract: the
// node runtime evaluates a small inline script that requires the
// initializer module from the project's node_modules, and the exec runtime
// runs a standalone initializer executable. Both pass the same JSON
// argument vector, run with the project root as working directory, and
// inherit the parent's standard streams. DispatchRuntime selects the
// runtime by name.
package runtime
