// Package domain defines the core domain models for unityvault.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - Token: the single-use amplitude pair (a, b) with a display id
//   - UnityVerifier: the a² + b² = 1 predicate a token must satisfy
//   - VaultEntry: the immutable record appended on a successful commit
//   - Status: the display state derived from token presence and outcome
//   - Errors: domain-specific error definitions
package domain
