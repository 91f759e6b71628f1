package helper

import "sync"

// KeyedMutex serializes mutations per logical key (an event ID, or a
// user|event pair) so check-then-act sequences like the registration
// capacity check cannot interleave, without taking a global lock.
//
// Locks are never evicted; the key space here is bounded by the number of
// events, which is small for this application.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	l, ok := km.locks[key]
	if !ok {
		l = &sync.Mutex{}
		km.locks[key] = l
	}
	km.mu.Unlock()
	l.Lock()
}

func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	l := km.locks[key]
	km.mu.Unlock()
	if l != nil {
		l.Unlock()
	}
}
