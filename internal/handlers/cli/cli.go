// Package cli implements the command-line surface of the ethrpc demo binary.
// It exposes one command per call style: blocking HTTP queries, and a watch
// command driving fire-and-forget WebSocket calls whose results arrive on the
// shared broadcast stream.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/ethrpc"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the ethrpc CLI application.
//
// It registers all available commands:
//
//   - `block-number`: Prints the latest block number over HTTP.
//   - `balance`: Prints an account balance at a block position.
//   - `block`: Prints a block fetched by number or tag.
//   - `watch`: Connects the WebSocket and streams correlated results.
//
// The client must already be constructed; endpoint configuration is the
// caller's concern.
func Run(ctx context.Context, client *ethrpc.Client) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "ethrpc",
		Description:           "Command-line interface for querying Ethereum nodes over JSON-RPC.",
		Usage:                 "ethrpc [command] [flags]",
		Commands: []*cli.Command{
			blockNumberCommand(client),
			balanceCommand(client),
			blockCommand(client),
			watchCommand(client),
		},
	}

	return app.Run(ctx, os.Args)
}
