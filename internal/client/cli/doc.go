// Package cli provides the interactive BlogSpace command-line client.
//
// It wires configuration, the remote API accessor, and the session store
// into an interactive REPL where each command is one of the application's
// pages. Typical flow: resolve the persisted session in the background,
// render the post listing, and execute user commands.
//
// Key features:
//   - Browse and read published posts (no account needed)
//   - Login / Signup / Logout
//   - Create, edit, and delete your own posts
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
