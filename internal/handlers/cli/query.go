package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/ethrpc"
	"github.com/gabapcia/ethrpc/ethtypes"

	"github.com/urfave/cli/v3"
)

// blockNumberCommand returns a CLI command that prints the latest block
// number using a blocking HTTP call.
//
// Usage example:
//
//	ethrpc block-number
func blockNumberCommand(client *ethrpc.Client) *cli.Command {
	return &cli.Command{
		Name:        "block-number",
		Description: "Fetch the number of the most recent block over HTTP.",
		Usage:       "Prints the latest block number as a hex quantity and as a decimal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			number, err := client.BlockNumber(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%d)\n", number, number.Int())
			return nil
		},
	}
}

// balanceCommand returns a CLI command that prints the balance of an account
// at a given block position.
//
// Usage example:
//
//	ethrpc balance --address 0xABC... --block latest
func balanceCommand(client *ethrpc.Client) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Fetch the balance of an account at a block position.",
		Usage:       "Prints the balance in wei. The address is validated before any network call.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Account address (0x-prefixed, 20 bytes)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "block",
				Usage: "Block position: hex number or earliest|latest|pending",
				Value: string(ethtypes.TagLatest),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := ethtypes.NewAddress(c.String("address"))
			if err != nil {
				return err
			}

			block, err := parseBlockPosition(c.String("block"))
			if err != nil {
				return err
			}

			balance, err := client.GetBalance(ctx, address, block)
			if err != nil {
				return err
			}

			fmt.Println(balance)
			return nil
		},
	}
}

// blockCommand returns a CLI command that prints a block fetched by number or
// tag, as indented JSON.
//
// Usage example:
//
//	ethrpc block --position latest --full
func blockCommand(client *ethrpc.Client) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Fetch a block by number or tag.",
		Usage:       "Prints the block as JSON. With --full the block carries full transaction objects.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "position",
				Usage: "Block position: hex number or earliest|latest|pending",
				Value: string(ethtypes.TagLatest),
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Return full transaction objects instead of hashes",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			position, err := parseBlockPosition(c.String("position"))
			if err != nil {
				return err
			}

			block, err := client.GetBlockByNumber(ctx, position, c.Bool("full"))
			if err != nil {
				return err
			}

			if block == nil {
				fmt.Println("no block at", position.String())
				return nil
			}

			data, err := json.MarshalIndent(block, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(data))
			return nil
		},
	}
}

// parseBlockPosition turns a CLI flag value into a BlockNumberOrTag,
// accepting a hex quantity or one of the symbolic tags.
func parseBlockPosition(s string) (ethtypes.BlockNumberOrTag, error) {
	var position ethtypes.BlockNumberOrTag
	if err := position.UnmarshalJSON([]byte(fmt.Sprintf("%q", s))); err != nil {
		return ethtypes.BlockNumberOrTag{}, err
	}
	return position, nil
}
