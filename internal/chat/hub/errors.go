package hub

import "errors"

// ErrClosed - returned by Recv after the subscription was closed.
var ErrClosed = errors.New("hub.Subscription: closed")
