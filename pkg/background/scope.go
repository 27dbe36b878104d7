// Package background joins a group of goroutines under a shared
// cancellation context.
package background

import (
	"context"
	"sync"
)

// Scope - abstract concurrency scope. Members register with Add/Done and
// watch Context for cancellation; any member (or an outsider) may call
// Cancel to stop the whole scope.
type Scope struct {
	ctx       context.Context
	ctxCancel context.CancelFunc
	members   sync.WaitGroup
}

// NewScope - concurrency scope builder. The scope is derived from the
// given parent context and is cancelled with it.
func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{
		ctx:       ctx,
		ctxCancel: cancel,
	}
}

// Context - returns scope context to watch for cancellation.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Cancel - cancels the scope context without waiting for members.
// Safe to call from inside a member goroutine and more than once.
func (s *Scope) Cancel() {
	s.ctxCancel()
}

// Add - registers scope members. Based on sync.WaitGroup.
func (s *Scope) Add(delta int) {
	s.members.Add(delta)
}

// Done - notifies the scope when a member is done. Based on sync.WaitGroup.
func (s *Scope) Done() {
	s.members.Done()
}

// Wait - blocks until every registered member has called Done.
func (s *Scope) Wait() {
	s.members.Wait()
}
