// Package cli provides the interactive Croissant command runner.
//
// It drives the same command surface as the HTTP bridge from a terminal:
// register and check credentials, manage users and messages, and inspect
// the runtime configuration. Passwords are read without echo when stdin is
// a terminal.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or stdin is closed.
package cli
