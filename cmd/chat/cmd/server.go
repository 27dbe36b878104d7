package cmd

import (
	"fmt"
	stdlog "log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jeffers1n/labRustChat/internal/chat"
	"github.com/jeffers1n/labRustChat/internal/chat/hub"
)

var serverPort uint16

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the chat server",
	Long: `Listen for clients on the given TCP port and relay every line a
client sends to all other connected clients.`,
	RunE: runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	logger := stdlog.New(os.Stdout, "chat:"+version+" ", stdlog.Ldate|stdlog.Ltime)

	listener, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", serverPort))
	if err != nil {
		return fmt.Errorf("unable to listen TCP: %w", err)
	}
	fmt.Println(color.GreenString("Server listening on port %d", serverPort))

	h, err := hub.New()
	if err != nil {
		listener.Close()
		return err
	}
	server, err := chat.NewServer(h, chat.WithLogger(logger))
	if err != nil {
		listener.Close()
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go server.Serve(listener)
	logger.Println("Chat server has started.")

	<-sig
	logger.Println("Got stop signal")
	logger.Println("Chat server stopped in", server.Shutdown(10*time.Second), "bye")
	return nil
}

func init() {
	serverCmd.Flags().Uint16VarP(&serverPort, "port", "p", 8080, "Listen port")
	rootCmd.AddCommand(serverCmd)
}
