// Package memory provides the in-memory vault for unityvault.
//
// The vault is an append-only sequence of entries guarded by an RWMutex.
// Entries are stored oldest first and returned newest first, which gives
// prepend semantics without shifting the slice on every append.
//
// Nothing is persisted; the vault lives as long as the process.
package memory
