package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/ethrpc"
	"github.com/gabapcia/ethrpc/internal/pkg/logger"
	"github.com/gabapcia/ethrpc/internal/pkg/resilience/retry"
	"github.com/gabapcia/ethrpc/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

// watchCommand returns a CLI command that connects the WebSocket, issues a
// fire-and-forget call on every tick, and prints each correlated result from
// the shared broadcast stream until interrupted.
//
// Usage example:
//
//	ethrpc watch --method eth_blockNumber --interval 12s
func watchCommand(client *ethrpc.Client) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Stream results of a repeatedly issued method over the WebSocket connection.",
		Usage:       "Issues one fire-and-forget call per interval and prints every correlated result. Terminates on Ctrl+C.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "method",
				Usage: "RPC method to issue (must take no parameters, e.g. eth_blockNumber, eth_gasPrice)",
				Value: "eth_blockNumber",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Delay between calls",
				Value: 12 * time.Second,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Connecting is the one step worth retrying here; the calls
			// themselves are fire-and-forget and cheap to miss a tick.
			connect := retry.New(retry.WithAttempts(5))
			if err := connect.Execute(ctx, func() error {
				return client.ConnectWebSocket(ctx)
			}); err != nil {
				return err
			}
			defer client.DisconnectWebSocket()

			results, cancelResults, err := client.SubscribeResults()
			if err != nil {
				return err
			}
			defer cancelResults()

			statuses, cancelStatuses, err := client.SubscribeStatus()
			if err != nil {
				return err
			}
			defer cancelStatuses()

			go func() {
				for {
					status, ok := chflow.Receive(ctx, statuses)
					if !ok {
						return
					}
					logger.Info(ctx, "connection status", "status", status.String())
				}
			}()

			go func() {
				for {
					result, ok := chflow.Receive(ctx, results)
					if !ok {
						return
					}
					fmt.Printf("#%d %s: %v\n", result.ID, result.Method, result.Value)
				}
			}()

			var (
				method = c.String("method")
				ticker = time.NewTicker(c.Duration("interval"))
				callID int64
			)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					callID++
					if err := client.CallAsync(ctx, method, callID); err != nil {
						logger.Error(ctx, "call failed before the frame was written", "method", method, "id", callID, "error", err)
					}
				}
			}
		},
	}
}
