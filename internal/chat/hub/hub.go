// Package hub implements the process-wide broadcast queue shared by all
// chat sessions: a bounded multi-producer fan-out buffer where every
// subscriber owns an independent read cursor.
package hub

import (
	"context"
	"sync"

	"github.com/jeffers1n/labRustChat/internal/chat/message"
)

// Hub - bounded fan-out queue for chat messages.
//
// Publishing never blocks: when the buffer is full the oldest message is
// evicted. A subscriber that falls further behind than the buffer capacity
// skips forward to the oldest still-buffered message and silently loses the
// rest, so a stalled consumer can never throttle publishers.
type Hub struct {
	capacity int

	mu   sync.Mutex
	ring []message.Message
	// head is the sequence number of the next message to publish,
	// tail the sequence number of the oldest message still buffered.
	head, tail uint64
	// notify is closed and replaced on every publish to wake blocked
	// subscribers; they re-check the ring after every wakeup.
	notify chan struct{}
}

type hubOption func(h *Hub) error

func setup(h *Hub, options ...hubOption) error {
	if h == nil {
		return nil
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(h); err != nil {
			return err
		}
	}
	return nil
}

// New - builds Hub with needed options.
func New(options ...hubOption) (*Hub, error) {
	h := &Hub{
		capacity: DefaultCapacity,
		notify:   make(chan struct{}),
	}
	if err := setup(h, options...); err != nil {
		return nil, err
	}
	h.ring = make([]message.Message, h.capacity)
	return h, nil
}

// Publish - appends a message to the queue, evicting the oldest buffered
// message when the queue is full. Never blocks and never fails.
func (h *Hub) Publish(m message.Message) {
	h.mu.Lock()
	h.ring[h.head%uint64(h.capacity)] = m
	h.head++
	if h.head-h.tail > uint64(h.capacity) {
		h.tail = h.head - uint64(h.capacity)
	}
	close(h.notify)
	h.notify = make(chan struct{})
	h.mu.Unlock()
}

// Subscribe - registers a new read cursor positioned at the current head,
// so only messages published afterwards are observed.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	return &Subscription{hub: h, cursor: h.head}
}

// Subscription - a private read cursor into the Hub.
// Recv and Close may be called from different goroutines, but Recv itself
// is not safe for concurrent use by multiple readers.
type Subscription struct {
	hub    *Hub
	cursor uint64
	closed bool
}

// Recv - blocks until the next message is available, the context is
// cancelled, or the subscription is closed. A cursor that lags behind the
// buffer skips forward to the oldest buffered message.
func (s *Subscription) Recv(ctx context.Context) (message.Message, error) {
	h := s.hub
	for {
		h.mu.Lock()
		if s.closed {
			h.mu.Unlock()
			return message.Message{}, ErrClosed
		}
		if s.cursor < h.tail {
			s.cursor = h.tail
		}
		if s.cursor < h.head {
			m := h.ring[s.cursor%uint64(h.capacity)]
			s.cursor++
			h.mu.Unlock()
			return m, nil
		}
		wakeup := h.notify
		h.mu.Unlock()

		select {
		case <-wakeup:
		case <-ctx.Done():
			return message.Message{}, ctx.Err()
		}
	}
}

// Close - releases the subscription. Close does not interrupt a Recv that
// is already blocked; cancel its context for that.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	s.closed = true
	s.hub.mu.Unlock()
}
