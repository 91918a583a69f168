// Command ethrpc is a small demonstration binary for the SDK: it wires
// configuration from the environment, initializes logging and telemetry, and
// hands a ready client to the CLI command surface.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/ethrpc"
	"github.com/gabapcia/ethrpc/internal/handlers/cli"
	"github.com/gabapcia/ethrpc/internal/pkg/logger"
	"github.com/gabapcia/ethrpc/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/ethrpc/internal/pkg/transport/http"

	"github.com/kelseyhightower/envconfig"
)

// config is the environment-driven configuration of the demo binary.
type config struct {
	HTTPEndpoint     string        `envconfig:"ETHRPC_HTTP_ENDPOINT"`
	WSEndpoint       string        `envconfig:"ETHRPC_WS_ENDPOINT"`
	HTTPTimeout      time.Duration `envconfig:"ETHRPC_HTTP_TIMEOUT" default:"10s"`
	HTTPRetryMax     int           `envconfig:"ETHRPC_HTTP_RETRY_MAX" default:"0"`
	LogLevel         string        `envconfig:"ETHRPC_LOG_LEVEL" default:"info"`
	TelemetryEnabled bool          `envconfig:"ETHRPC_TELEMETRY_ENABLED" default:"false"`
}

func run(ctx context.Context) error {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, "ethrpc")
		if err != nil {
			return err
		}
		defer shutdown(context.Background())
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	// Retries are caller policy: the SDK core never retries, so any retry
	// budget for HTTP calls is set here, on the session the caller owns.
	client, err := ethrpc.New(ethrpc.Config{
		HTTPEndpoint: cfg.HTTPEndpoint,
		WSEndpoint:   cfg.WSEndpoint,
		HTTPClient: transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.HTTPTimeout),
			transporthttp.WithRetryMax(cfg.HTTPRetryMax),
		),
	})
	if err != nil {
		return err
	}

	return cli.Run(ctx, client)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "ethrpc:", err)
		os.Exit(1)
	}
}
