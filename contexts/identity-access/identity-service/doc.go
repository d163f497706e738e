// Package identityservice turns inbound bearer credentials into a verified
// identity (account id + email) for every other context.
//
// Layering:
// - domain: credential errors
// - application: bearer extraction and verification use case
// - ports: TokenVerifier boundary
// - adapters: jwt (HS256/RS256) and memory (static tokens) verifiers
package identityservice
