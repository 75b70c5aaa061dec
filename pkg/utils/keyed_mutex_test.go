package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			km.Lock("user-a/2024-02")
			counter++
			km.Unlock("user-a/2024-02")
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	km.Lock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	// A held lock on "a" must not block key "b".
	<-done
	km.Unlock("a")
}

func TestKeyedMutexUnlockWithoutLockPanics(t *testing.T) {
	km := NewKeyedMutex()

	assert.Panics(t, func() {
		km.Unlock("never-locked")
	})
}
