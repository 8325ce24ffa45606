// Package config manages user-level settings stored at
// ~/.create-react-app/config.yaml. Values can be overridden with CRA_*
// environment variables and, at the command line, by flags. It owns the
// defaults for the install plan (runtime, renderer, build-tooling and
// fallback template packages), the package manager choice, the delegated
// initializer runtime, and the preflight version constraints.
package config
