// Package storage provides vault backends for unityvault.
//
// Two engines implement service.Vault:
//
//   - memory: a mutex-guarded slice (default)
//   - badger: Badger v3 in in-memory mode, keyed by big-endian sequence
//     numbers and read back with a reverse iterator
//
// Neither engine writes to disk; the vault lives as long as the process.
// OpenVault selects an engine by its configured name.
package storage
