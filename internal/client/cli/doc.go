// Package cli provides the interactive Contact Keeper registration client.
//
// It wires configuration, the HTTP API client and a small REPL. The
// register command prompts for name, email and a hidden password, creates
// the account and prints the session token, or the server's validation
// messages when the input is rejected.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
