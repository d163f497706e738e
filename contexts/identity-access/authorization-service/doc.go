// Package authorization owns platform accounts and the authorization policy
// every other context consults before touching protected data.
//
// Layering:
// - domain: Account entity, role checks, errors
// - application: the reusable Policy plus account commands/queries
// - ports: persistence and clock boundaries
// - adapters: HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Roles are looked up from storage on every check; nothing is cached.
package authorization
