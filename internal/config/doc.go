// Package config holds runtime configuration for a11yscan.
//
// Configuration is assembled from three layers, lowest precedence
// first: built-in defaults, an optional YAML configuration file
// (.a11yscan in the working directory, or config.yaml under the XDG
// config directory), and command-line flags. The resulting Config is
// passed through the application by dependency injection rather than
// global state.
package config
