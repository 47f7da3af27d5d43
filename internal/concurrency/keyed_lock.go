// Package concurrency holds small synchronization helpers shared by stores.
package concurrency

import (
	"sync"
)

// KeyedRWLock hands out one RWMutex per key. Keys are never evicted, which
// suits the small fixed set of save slots a process touches.
type KeyedRWLock struct {
	locks sync.Map
}

// NewKeyedRWLock creates an empty KeyedRWLock
func NewKeyedRWLock() *KeyedRWLock {
	return &KeyedRWLock{}
}

func (k *KeyedRWLock) get(key string) *sync.RWMutex {
	lock, _ := k.locks.LoadOrStore(key, &sync.RWMutex{})
	return lock.(*sync.RWMutex)
}

// RLock takes the shared lock for key and returns its release function.
func (k *KeyedRWLock) RLock(key string) (unlock func()) {
	l := k.get(key)
	l.RLock()
	return l.RUnlock
}

// Lock takes the exclusive lock for key and returns its release function.
func (k *KeyedRWLock) Lock(key string) (unlock func()) {
	l := k.get(key)
	l.Lock()
	return l.Unlock
}
