// Package message defines the chat wire formats shared by server and client.
package message

import (
	"fmt"
	"strings"
)

// Message - a single chat line together with the username it originated from.
// The Text field carries the ready-to-send wire form, newline included.
type Message struct {
	Text   string
	Sender string
}

// Trim - strips surrounding whitespace from a wire line, including the
// terminating newline and any CR left by telnet-style peers.
func Trim(line string) string {
	return strings.TrimSpace(line)
}

// Format - builds the rebroadcast wire form of a client line.
func Format(sender, text string) string {
	return fmt.Sprintf("%s: %s\n", sender, text)
}

// Broadcast - builds a Message ready to publish on behalf of sender.
func Broadcast(sender, text string) Message {
	return Message{
		Text:   Format(sender, text),
		Sender: sender,
	}
}

// Welcome - builds the greeting the server sends right after the handshake.
func Welcome(username string) string {
	return fmt.Sprintf("Welcome to the chat, %s!\n", username)
}
