package booking

import "sync"

// keyedMutex provides mutual exclusion per (movie, theatre) key so that the
// conflict-check-then-commit sequence is serialized for one showing without
// blocking bookings of other showings. Entries are never evicted; the key
// space is bounded by the size of the movie catalog.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// lock acquires the mutex for key and returns the matching unlock function.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()

	return m.Unlock
}

func lockKey(movieName, theatreName string) string {
	return movieName + "\x00" + theatreName
}
