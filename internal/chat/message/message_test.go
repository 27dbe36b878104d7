package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrim(test *testing.T) {
	cases := []struct {
		line     string
		expected string
	}{
		{"hello\n", "hello"},
		{"hello\r\n", "hello"},
		{"  spaced out  \n", "spaced out"},
		{"\t\n", ""},
		{"   \n", ""},
		{"no newline", "no newline"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(test, c.expected, Trim(c.line), "Trim(%q)", c.line)
	}
}

func TestFormat(test *testing.T) {
	assert.Equal(test, "alice: hello\n", Format("alice", "hello"))
	assert.Equal(test, ": hello\n", Format("", "hello"), "empty username stays as-is")
}

func TestBroadcast(test *testing.T) {
	m := Broadcast("bob", "hi there")
	assert.Equal(test, "bob: hi there\n", m.Text)
	assert.Equal(test, "bob", m.Sender)
}

func TestWelcome(test *testing.T) {
	assert.Equal(test, "Welcome to the chat, carol!\n", Welcome("carol"))
}
