// Package applicationservice owns scholarship applications: the lifecycle
// state machine students and moderators drive, and the reconciliation of
// external checkout sessions into application records.
//
// Layering:
// - domain: Application entity, lifecycle rules, errors
// - application: commands/queries using explicit ports
// - ports: persistence, catalog, checkout, rate-limit and metrics boundaries
// - adapters: HTTP, memory, postgres, stripe, and cross-context readers
// - transport: module-private DTOs for HTTP contracts
//
// At most one application exists per (scholarship, user). That guarantee
// comes from the repository's keyed upsert primitives; use cases never check
// for existence before writing.
package applicationservice
