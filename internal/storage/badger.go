package storage

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/unityvault/internal/core/domain"
	"github.com/yndnr/unityvault/internal/telemetry/logger"
)

// entryPrefix namespaces vault entries in the key space.
var entryPrefix = []byte("vault/entry/")

// BadgerVault implements service.Vault on an in-memory Badger DB.
type BadgerVault struct {
	db  *badger.DB
	log logger.Logger

	mu     sync.Mutex
	seq    uint64
	closed bool
}

// NewBadgerVault opens an in-memory Badger DB.
func NewBadgerVault(log logger.Logger) (*BadgerVault, error) {
	if log == nil {
		log = logger.Default()
	}

	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = &badgerLogger{logger: log.With("component", "badger")}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, domain.ErrVaultStorage.WithCause(fmt.Errorf("badger: open db: %w", err))
	}

	log.Debug("badger vault opened", "in_memory", true)

	return &BadgerVault{
		db:  db,
		log: log,
	}, nil
}

// Append stores entry under the next sequence number.
func (v *BadgerVault) Append(_ context.Context, entry domain.VaultEntry) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return domain.ErrVaultClosed
	}

	value, err := json.Marshal(entry)
	if err != nil {
		return domain.ErrVaultStorage.WithCause(err)
	}

	key := entryKey(v.seq + 1)
	if err := v.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	}); err != nil {
		return domain.ErrVaultStorage.WithCause(err)
	}

	v.seq++
	return nil
}

// All returns every entry, newest first.
func (v *BadgerVault) All(_ context.Context) ([]domain.VaultEntry, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, domain.ErrVaultClosed
	}

	out := make([]domain.VaultEntry, 0, v.seq)
	err := v.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = entryPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(entryKey(^uint64(0))); it.ValidForPrefix(entryPrefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}

			var e domain.VaultEntry
			if err := json.Unmarshal(value, &e); err != nil {
				return err
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, domain.ErrVaultStorage.WithCause(err)
	}

	return out, nil
}

// Len returns the number of entries.
func (v *BadgerVault) Len(_ context.Context) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return int(v.seq), nil
}

// Close shuts down the Badger DB. Everything stored is gone afterwards.
func (v *BadgerVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	if err := v.db.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	v.log.Debug("badger vault closed", "entries", v.seq)
	return nil
}

// entryKey builds prefix + big-endian seq so keys sort by insertion order.
func entryKey(seq uint64) []byte {
	key := make([]byte, len(entryPrefix)+8)
	copy(key, entryPrefix)
	binary.BigEndian.PutUint64(key[len(entryPrefix):], seq)
	return key
}

// badgerLogger adapts logger.Logger to Badger's Logger interface.
// Badger's info chatter is demoted to debug.
type badgerLogger struct {
	logger logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}
