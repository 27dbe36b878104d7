// Command chat runs a line-oriented TCP chat server or an interactive
// client, selected by subcommand:
//
//	chat server [--port <port>]
//	chat client --address <host:port> --username <name>
package main

import "github.com/jeffers1n/labRustChat/cmd/chat/cmd"

func main() {
	cmd.Execute()
}
