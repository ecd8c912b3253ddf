package checkout

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocksSerializeSameKey(t *testing.T) {
	locks := newUserLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire("user-1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestUserLocksIndependentKeys(t *testing.T) {
	locks := newUserLocks()

	releaseA := locks.acquire("user-a")
	defer releaseA()

	// must not block while user-a is held; a shared lock would deadlock
	// the test here until the suite timeout
	done := make(chan struct{})
	go func() {
		release := locks.acquire("user-b")
		release()
		close(done)
	}()
	<-done
}
