package hub

import "fmt"

// DefaultCapacity - number of messages the hub buffers before it starts
// evicting the oldest one.
const DefaultCapacity = 100

// WithCapacity - overwrites the default buffer capacity.
// Mostly useful to provoke lag in tests.
func WithCapacity(capacity int) hubOption {
	return func(h *Hub) error {
		if capacity <= 0 {
			return fmt.Errorf("hub.WithCapacity: invalid capacity (%d)", capacity)
		}
		h.capacity = capacity
		return nil
	}
}
