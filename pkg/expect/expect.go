// Package expect tracks operations a test is waiting on, so a harness can
// assert at the end of a test that nothing was left outstanding.
//
// Each Tracker is an explicit harness context: create one per test and
// pass it to the code under test. Trackers are safe for concurrent use.
//
//	tr := expect.New()
//	out, err := expect.ShouldFulfill(tr, "encode", func() ([]byte, error) { ... })
//	...
//	require.NoError(t, tr.CheckFulfilled())
package expect

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// UnfulfilledError lists the keys still outstanding at check time.
type UnfulfilledError struct {
	Keys []string // Outstanding keys, sorted
}

func (e *UnfulfilledError) Error() string {
	return fmt.Sprintf("timeout period is expired while waiting %s", strings.Join(e.Keys, ", "))
}

// Tracker counts outstanding operations per key.
type Tracker struct {
	mu      sync.Mutex
	waiting map[string]int
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{waiting: make(map[string]int)}
}

// Start records the beginning of an operation under key.
func (t *Tracker) Start(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.waiting[key]++
}

// Finish records the completion of an operation under key. The entry is
// removed when its count reaches zero; finishing an unknown key is a no-op.
func (t *Tracker) Finish(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, ok := t.waiting[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(t.waiting, key)
		return
	}
	t.waiting[key] = n - 1
}

// Outstanding returns the keys with unfinished operations, sorted.
func (t *Tracker) Outstanding() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.keysLocked()
}

func (t *Tracker) keysLocked() []string {
	keys := make([]string, 0, len(t.waiting))
	for k := range t.waiting {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CheckFulfilled fails with *UnfulfilledError if any key is outstanding.
// The tracker is reset either way.
func (t *Tracker) CheckFulfilled() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := t.keysLocked()
	t.waiting = make(map[string]int)

	if len(keys) > 0 {
		return &UnfulfilledError{Keys: keys}
	}
	return nil
}

// ShouldFulfill runs fn under key. The key is finished only when fn
// succeeds; an error or a panic leaves it outstanding, which CheckFulfilled
// then reports.
func ShouldFulfill[T any](t *Tracker, key string, fn func() (T, error)) (T, error) {
	t.Start(key)
	result, err := fn()
	if err != nil {
		return result, err
	}
	t.Finish(key)
	return result, nil
}
