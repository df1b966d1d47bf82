// Package entropy provides the random angle source for token generation.
//
// Production code reads from crypto/rand through CryptoSource. Any read
// failure surfaces as domain.ErrEntropyUnavailable; there is no fallback to
// a general-purpose pseudo-random generator. FixedSource replays queued
// values for deterministic tests.
package entropy
