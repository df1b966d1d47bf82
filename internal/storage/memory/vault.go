package memory

import (
	"context"
	"sync"

	"github.com/yndnr/unityvault/internal/core/domain"
)

// Vault is an in-memory, append-only entry store.
type Vault struct {
	mu      sync.RWMutex
	entries []domain.VaultEntry
	closed  bool
}

// New creates an empty vault.
func New() *Vault {
	return &Vault{
		entries: make([]domain.VaultEntry, 0),
	}
}

// Append stores entry as the newest one.
func (v *Vault) Append(_ context.Context, entry domain.VaultEntry) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return domain.ErrVaultClosed
	}
	v.entries = append(v.entries, entry)
	return nil
}

// All returns a copy of the entries, newest first.
func (v *Vault) All(_ context.Context) ([]domain.VaultEntry, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]domain.VaultEntry, len(v.entries))
	for i, e := range v.entries {
		out[len(v.entries)-1-i] = e
	}
	return out, nil
}

// Len returns the number of entries.
func (v *Vault) Len(_ context.Context) (int, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.entries), nil
}

// Close marks the vault closed. Entries stay readable.
func (v *Vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}
