package entropy

import (
	"errors"
	"sync"
)

// ErrSourceDrained is returned by a FixedSource set to fail.
var ErrSourceDrained = errors.New("entropy: fixed source drained")

// FixedSource is a deterministic Source for tests.
//
// Uint32 replays the queued values in order and repeats the last one once
// the queue is exhausted. Read fills buffers from a byte counter, so every
// id draw differs from the previous one.
type FixedSource struct {
	mu      sync.Mutex
	values  []uint32
	next    int
	counter byte
	fail    bool
}

// NewFixedSource returns a source that replays values.
func NewFixedSource(values ...uint32) *FixedSource {
	if len(values) == 0 {
		values = []uint32{0}
	}
	return &FixedSource{values: values}
}

// SetFail makes every subsequent draw fail with ErrSourceDrained.
func (f *FixedSource) SetFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

// Uint32 returns the next queued value.
func (f *FixedSource) Uint32() (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return 0, ErrSourceDrained
	}
	v := f.values[f.next]
	if f.next < len(f.values)-1 {
		f.next++
	}
	return v, nil
}

// Read fills p with counter bytes.
func (f *FixedSource) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return 0, ErrSourceDrained
	}
	for i := range p {
		p[i] = f.counter
		f.counter++
	}
	return len(p), nil
}
