// Package commands defines the intergalactic CLI and wires dependencies for subcommands.
//
// Commands
//
//   - (root) [FILE]   Answer a script of definitions and questions, or open a prompt
//   - decode          Print the value of Roman numerals
//   - translate       Translate a phrase with an ad-hoc dictionary
//
// # Implementation
//
// The root command resolves configuration and builds a fresh session (logger,
// dictionary, price book, engine) before any subcommand runs. With a FILE
// argument, or when stdin is not a terminal, input is processed in batch
// mode; otherwise an interactive prompt is opened.
package commands
