// Package types holds the result values shared by the manager, the CLI and
// the output renderer.
package types
