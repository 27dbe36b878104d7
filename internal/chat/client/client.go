// Package client implements the interactive chat client: a socket reader
// rendering incoming lines, an input reader feeding a send queue, and a
// socket writer draining it.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/jeffers1n/labRustChat/internal/chat/message"
	"github.com/jeffers1n/labRustChat/pkg/background"
)

// sendQueueSize - buffer between the input reader and the socket writer.
// Typing rate is negligible, so the bound is never observed in practice;
// a full queue only delays input consumption.
const sendQueueSize = 64

// Client - a single chat participant talking to a server over TCP.
type Client struct {
	address  string
	username string

	input     io.Reader
	output    io.Writer
	errOutput io.Writer
	highlight *color.Color
}

// New - builds a Client for the given server address and username.
func New(address, username string, options ...clientOption) (*Client, error) {
	if address == "" {
		return nil, errors.New("client.New: server address is required")
	}
	c := &Client{
		address:   address,
		username:  username,
		input:     os.Stdin,
		output:    os.Stdout,
		errOutput: os.Stderr,
		highlight: color.New(color.FgHiYellow, color.Bold),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Run - connects to the server, sends the username frame and runs the I/O
// trio until the socket side finishes. The first of reader/writer to exit
// cancels the other; a blocked input read is abandoned at exit.
// Returns nil on a clean end, an error when connecting or the handshake
// write fails.
func (c *Client) Run(ctx context.Context) error {
	conn, err := net.Dial("tcp", c.address)
	if err != nil {
		return fmt.Errorf("client: connect to %s: %w", c.address, err)
	}
	defer conn.Close()
	fmt.Fprintln(c.output, color.GreenString("Connected to server at %s", c.address))

	if _, err := fmt.Fprintf(conn, "%s\n", c.username); err != nil {
		return fmt.Errorf("client: send username: %w", err)
	}

	queue := make(chan string, sendQueueSize)
	scope := background.NewScope(ctx)

	scope.Add(1)
	go func() {
		defer func() {
			scope.Cancel()
			conn.Close()
			scope.Done()
		}()
		c.maintainInbox(scope.Context(), conn)
	}()

	scope.Add(1)
	go func() {
		defer func() {
			scope.Cancel()
			conn.Close()
			scope.Done()
		}()
		c.maintainOutbox(scope.Context(), conn, queue)
	}()

	// Input runs outside the scope: a read blocked on stdin cannot be
	// cancelled portably, so the goroutine is left behind if still blocked
	// when the socket side finishes.
	go c.maintainInput(scope.Context(), queue)

	scope.Wait()
	return nil
}

// maintainInbox - renders newline-framed lines received from the server.
// EOF and read errors terminate the reader with a notice, unless the scope
// was already cancelled by the sibling writer.
func (c *Client) maintainInbox(ctx context.Context, conn net.Conn) {
	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if text := message.Trim(line); text != "" {
			c.render(text)
		}
		if err == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.output, color.RedString("Connection closed by server"))
		} else {
			fmt.Fprintln(c.errOutput, color.RedString("Error reading from server: %v", err))
		}
		return
	}
}

// maintainOutbox - writes queued lines to the server, newline-terminated.
// Returns on write error, on cancellation, or once the closed queue is
// drained.
func (c *Client) maintainOutbox(ctx context.Context, conn net.Conn, queue <-chan string) {
	for {
		select {
		case text, ok := <-queue:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(conn, "%s\n", text); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// maintainInput - pushes non-empty input lines into the send queue.
// EOF on input closes the queue so the writer can drain and finish.
func (c *Client) maintainInput(ctx context.Context, queue chan<- string) {
	defer close(queue)
	scanner := bufio.NewScanner(c.input)
	for scanner.Scan() {
		text := message.Trim(scanner.Text())
		if text == "" {
			continue
		}
		select {
		case queue <- text:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(c.errOutput, color.RedString("Error reading input: %v", err))
	}
}
