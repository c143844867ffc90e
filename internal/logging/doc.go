// Package logging builds the zerolog logger shared by the CLI and engine.
package logging
