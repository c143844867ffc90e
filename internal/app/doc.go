// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional YAML file and the
// environment, then builds the logger, dictionary, price book and query
// engine for a single session, exposing them via the Wire struct.
package app
