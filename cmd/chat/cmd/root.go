package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // set at build time using -ldflags

var rootCmd = &cobra.Command{
	Use:     "chat",
	Short:   "Chat application with client and server",
	Version: version,
	Long: `Line-oriented chat over TCP.

Run a server relaying messages among connected clients:

  chat server --port 8080

Join it from another terminal:

  chat client --address localhost:8080 --username alice`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
