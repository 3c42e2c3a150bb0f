// Package cli provides the interactive pizza store command-line client.
//
// It wires configuration, logging, metrics, the API services and the
// session store into a REPL. Typical flow: start a background connectivity
// watcher, let the user browse the menu anonymously, log in (customers land
// on the menu, staff on the admin dashboard) and run commands.
//
// Key features:
//   - Login / Register / Logout with identify-then-sign-in
//   - Menu, pizzas, cart, checkout, orders and restaurant info
//   - Profile view and edit
//   - Staff: promotions administration, reports and daily stats
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
