// Package service provides domain services for unityvault.
//
// Domain services contain the business logic and orchestrate operations on
// domain models. They define interfaces for their storage and entropy
// dependencies, allowing for dependency injection and testability.
//
// This package contains:
//
//   - TokenFactory: derives a token from one random angle plus an
//     independent display id draw
//   - Session: the explicit session object owning the active token, the
//     pending draft and the vault; it implements generate, commit/burn
//     and discard
//
// Session operations are serialized by a single mutex. The commit path
// (verify, append, burn) runs entirely inside that critical section, so
// the vault never holds an entry whose token was not verified.
package service
