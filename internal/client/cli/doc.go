// Package cli is the interactive terminal client of jotti.
//
// It runs a read-eval-print loop over stdin. Each line is a command name
// followed by optional arguments; commands prompt for anything else they
// need. Admins manage users, products and tables, service staff take
// orders and register payments. Commands are guarded by the session role
// and map backend error codes to German messages for the user.
//
// Two background watchers run alongside the loop: one pings the backend
// and switches between online and offline mode, the other notices an
// expired session.
package cli
