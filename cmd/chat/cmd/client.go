package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jeffers1n/labRustChat/internal/chat/client"
)

var (
	clientAddress  string
	clientUsername string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Connect to a chat server",
	Long: `Connect to a running chat server, send lines typed on stdin and
print lines relayed from other participants. Lines mentioning
@<your-username> are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := client.New(clientAddress, clientUsername)
		if err != nil {
			return err
		}
		return c.Run(context.Background())
	},
}

func init() {
	clientCmd.Flags().StringVarP(&clientAddress, "address", "a", "", "Server address as host:port")
	clientCmd.Flags().StringVarP(&clientUsername, "username", "u", "", "Name to chat under")
	clientCmd.MarkFlagRequired("address")
	clientCmd.MarkFlagRequired("username")
	rootCmd.AddCommand(clientCmd)
}
