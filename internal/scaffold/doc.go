// Package scaffold bootstraps a new project directory: it creates the
// directory (and any missing parents) and writes the initial package.json.
// It never changes the process working directory; the returned Project
// carries the absolute root every later stage runs against.
package scaffold
