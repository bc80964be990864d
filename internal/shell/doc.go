// Package shell runs the interactive file manager session.
//
// The loop greets the user, then for every input line dispatches it to a
// bound command, runs it and prints the current directory. Input that does
// not parse prints "Invalid input"; a command that fails or panics prints
// "Operation failed" and its cause goes to the diagnostics log. Neither ends
// the session.
//
// The session ends with a goodbye on .exit, at end of input, or when the
// context is canceled. Cancellation is honored even while a command is
// blocked mid-stream.
package shell
