package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameLock(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("alice"), lm.GetLock("alice"))
	assert.NotSame(t, lm.GetLock("alice"), lm.GetLock("bob"))
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("shared", func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockManager_WithLockReturnsErrorAndReleases(t *testing.T) {
	lm := NewLockManager()
	boom := errors.New("boom")

	assert.ErrorIs(t, lm.WithLock("k", func() error { return boom }), boom)
	assert.True(t, lm.GetLock("k").TryLock(), "lock is released after fn returns")
}
