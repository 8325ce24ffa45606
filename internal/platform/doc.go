// Package platform hides operating-system differences in locating the
// executables this tool spawns. On Unix systems lookup is exec.LookPath.
// On Windows, package-manager shims are installed as .cmd files that
// exec.LookPath does not try for bare names when PATHEXT is unusual, so the
// shim extensions are probed explicitly.
package platform
