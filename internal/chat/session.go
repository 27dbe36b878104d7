package chat

import (
	"bufio"
	"context"
	"io"
	"net"
	"sync"

	"github.com/fatih/color"

	"github.com/jeffers1n/labRustChat/internal/chat/hub"
	"github.com/jeffers1n/labRustChat/internal/chat/message"
)

// serveConn - runs one session end-to-end: handshake, then a reader/writer
// pair over the connection joined by a session context. The session owns
// the connection exclusively and closes it on exit.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	// Subscribe before the welcome is written, so a peer that has seen its
	// welcome is guaranteed to receive everything published afterwards.
	sub := s.hub.Subscribe()
	defer sub.Close()

	// ctx - derived per-session context. The watcher below closes the
	// connection once it is cancelled, so either loop's failure or a server
	// shutdown releases the sibling blocked on the socket - including a
	// handshake read still waiting for the username line.
	ctx, cancel := context.WithCancel(s.ctx)
	wg := sync.WaitGroup{}
	defer wg.Wait()
	defer cancel()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		conn.Close()
	}()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	// an empty username is accepted as-is
	username := message.Trim(line)

	if _, err := io.WriteString(conn, message.Welcome(username)); err != nil {
		return
	}
	logInfo(s.logger, color.GreenString("User %q connected from %s", username, conn.RemoteAddr()))

	wg.Add(1)
	go func() {
		defer func() {
			// release the inbox blocked on conn even if its side is healthy
			cancel()
			wg.Done()
		}()
		s.maintainOutbox(ctx, conn, sub, username)
	}()

	s.maintainInbox(reader, username)

	cancel()
	wg.Wait()

	logInfo(s.logger, color.YellowString("User %q disconnected", username))
}

// maintainInbox - reads framed lines from the client and publishes non-blank
// ones to the hub tagged with the session username. Returns on EOF or any
// read error.
func (s *Server) maintainInbox(reader *bufio.Reader, username string) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		text := message.Trim(line)
		if text == "" {
			continue
		}
		s.hub.Publish(message.Broadcast(username, text))
	}
}

// maintainOutbox - consumes hub messages and writes them to the client,
// discarding the session's own messages. Returns on write error or when the
// session context is cancelled.
func (s *Server) maintainOutbox(ctx context.Context, conn net.Conn, sub *hub.Subscription, username string) {
	for {
		m, err := sub.Recv(ctx)
		if err != nil {
			return
		}
		if m.Sender == username {
			// self-echo suppression
			continue
		}
		if _, err := io.WriteString(conn, m.Text); err != nil {
			return
		}
	}
}
