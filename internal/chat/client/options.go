package client

import (
	"errors"
	"io"

	"github.com/fatih/color"
)

type clientOption func(c *Client) error

// WithInput - overwrites the default input source (stdin).
func WithInput(r io.Reader) clientOption {
	return func(c *Client) error {
		if r == nil {
			return errors.New("client.WithInput: reader is nil")
		}
		c.input = r
		return nil
	}
}

// WithOutput - overwrites the default destination for received lines and
// notices (stdout).
func WithOutput(w io.Writer) clientOption {
	return func(c *Client) error {
		if w == nil {
			return errors.New("client.WithOutput: writer is nil")
		}
		c.output = w
		return nil
	}
}

// WithErrorOutput - overwrites the default destination for error notices
// (stderr).
func WithErrorOutput(w io.Writer) clientOption {
	return func(c *Client) error {
		if w == nil {
			return errors.New("client.WithErrorOutput: writer is nil")
		}
		c.errOutput = w
		return nil
	}
}

// WithHighlight - overwrites the mention highlight style.
func WithHighlight(h *color.Color) clientOption {
	return func(c *Client) error {
		if h == nil {
			return errors.New("client.WithHighlight: color is nil")
		}
		c.highlight = h
		return nil
	}
}
