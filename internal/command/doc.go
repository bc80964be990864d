// Package command parses shell input lines into bound operations.
//
// A Registry holds the commands known to the shell in registration order.
// Each command pairs a name with an argument parser and a handler; Spec
// makes the parsed argument shape part of the handler's type, so a handler
// never receives arguments it did not declare.
//
// The Dispatcher resolves a line against the registry (longest name on a
// token boundary wins), validates the remainder and returns a Bound value
// that runs the handler with the parsed arguments:
//
//	d := command.NewDispatcher(registry)
//	bound, err := d.Parse(`rn "old name.txt" "new name.txt"`)
//	if err != nil {
//		// errors.Is(err, command.ErrInvalidInput)
//	}
//	err = bound.Execute(ctx)
package command
