package background

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScope_CancelStopsMembers(test *testing.T) {
	scope := NewScope(context.Background())

	data := make(chan int)
	scope.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer scope.Done()
			for {
				select {
				case data <- 1:
				case <-scope.Context().Done():
					return
				}
			}
		}()
	}

	// both producers are alive until the scope is cancelled
	<-data
	<-data

	scope.Cancel()
	done := make(chan struct{})
	go func() {
		scope.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		test.Fatal("members did not stop after Cancel")
	}
}

func TestScope_MemberMayCancel(test *testing.T) {
	scope := NewScope(context.Background())

	scope.Add(1)
	go func() {
		defer scope.Done()
		scope.Cancel() // first-exit policy: the finishing member stops its siblings
	}()

	scope.Wait()
	assert.Error(test, scope.Context().Err())
	scope.Cancel() // repeated cancel is a no-op
}

func TestScope_InheritsParentCancellation(test *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	scope := NewScope(parent)
	cancel()
	assert.Error(test, scope.Context().Err())

	assert.NotNil(test, NewScope(nil).Context(), "nil parent falls back to Background")
}
