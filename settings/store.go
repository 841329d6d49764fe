package settings

import (
	"slices"
	"sync"
)

// Listener is called after a change with the previous and the new
// settings.
type Listener func(old, new Settings)

// Store holds the current settings and notifies listeners of changes. It is
// safe for concurrent use. Listeners run synchronously on the goroutine
// that made the change, outside the store's lock.
type Store struct {
	mu   sync.RWMutex
	cur  Settings
	subs []storeSub
	next int
}

type storeSub struct {
	id int
	fn Listener
}

// NewStore returns a store holding s.
func NewStore(s Settings) *Store {
	return &Store{cur: s}
}

// Get returns the current settings.
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.cur
}

// Update applies fn to a copy of the current settings. The result is kept
// only if it validates.
//
// fn runs without the lock held. If another change lands while fn runs,
// Update retries fn on the newer settings.
func (st *Store) Update(fn func(*Settings)) error {
	for {
		base := st.Get()
		next := base
		fn(&next)
		if err := next.Validate(); err != nil {
			return err
		}
		st.mu.Lock()
		if st.cur != base {
			st.mu.Unlock()
			continue
		}
		return st.commitLocked(next)
	}
}

// Replace swaps in s if it validates.
func (st *Store) Replace(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	st.mu.Lock()
	return st.commitLocked(s)
}

// commitLocked stores s, releases the lock and notifies listeners.
func (st *Store) commitLocked(s Settings) error {
	old := st.cur
	st.cur = s
	subs := slices.Clone(st.subs)
	st.mu.Unlock()

	if old == s {
		return nil
	}
	for _, sub := range subs {
		sub.fn(old, s)
	}
	return nil
}

// Subscribe registers l and returns a function that removes it.
func (st *Store) Subscribe(l Listener) (cancel func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.next++
	id := st.next
	st.subs = append(st.subs, storeSub{id: id, fn: l})
	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		st.subs = slices.DeleteFunc(st.subs, func(s storeSub) bool { return s.id == id })
	}
}
