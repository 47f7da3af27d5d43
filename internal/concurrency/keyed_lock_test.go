package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedRWLock_ExclusivePerKey(t *testing.T) {
	locks := NewKeyedRWLock()
	var (
		mu      sync.Mutex
		counter int
		wg      sync.WaitGroup
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("slot")
			defer unlock()

			mu.Lock()
			v := counter
			mu.Unlock()
			time.Sleep(time.Microsecond)
			mu.Lock()
			counter = v + 1
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedRWLock_KeysAreIndependent(t *testing.T) {
	locks := NewKeyedRWLock()
	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlock := locks.Lock("b")
		unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
}

func TestKeyedRWLock_ReadersShare(t *testing.T) {
	locks := NewKeyedRWLock()
	unlock := locks.RLock("slot")
	defer unlock()

	done := make(chan struct{})
	go func() {
		release := locks.RLock("slot")
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second reader blocked")
	}
}
