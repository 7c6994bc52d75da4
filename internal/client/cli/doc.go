// Package cli provides the interactive MakanScan terminal client.
//
// It wires configuration, the local session database, the API client and the
// session store, then runs a REPL whose command set follows the root route:
//
//   - loading: the persisted session is being restored
//   - auth:    login, register
//   - main:    inventory, scanning, journal, recipes, cart, rewards,
//     donations, supermarkets, orders and notifications, plus whoami,
//     refresh and logout
//   - error:   restoring the session failed; only exit is offered
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router and runREPL for details.
package cli
