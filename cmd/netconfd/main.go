// Command netconfd is the broker daemon: it loads its configuration, binds
// the local UNIX socket, and multiplexes JSON client requests onto
// NETCONF-over-SSH sessions until terminated.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/netconfd/netconfd/internal/broker"
	"github.com/netconfd/netconfd/internal/config"
	"github.com/netconfd/netconfd/internal/handlers"
	"github.com/netconfd/netconfd/internal/registry"
	"github.com/netconfd/netconfd/internal/trace"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a netconfd TOML configuration file")
	diagnostic := flag.Bool("diagnostic-log", false, "log every lifecycle event instead of only errors")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "netconfd: loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	hooks := trace.DefaultLoggingHooks
	if *diagnostic {
		hooks = trace.DiagnosticLoggingHooks
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = trace.WithTrace(ctx, hooks)

	reg := registry.New()
	h := handlers.New(handlers.Config{
		Registry:                  reg,
		NotificationQueueCapacity: cfg.NotificationQueueCapacity,
	})

	b, err := broker.New(ctx, cfg.NetconfSocket, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "netconfd: binding %s: %v\n", cfg.NetconfSocket, err)
		return 1
	}

	go broker.RunSweeper(ctx, reg, cfg.ActivityCheckInterval, cfg.ActivityTimeout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	hooks.SignalReceived(sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownJoinDeadline)
	defer shutdownCancel()
	b.Close(shutdownCtx)

	broker.CloseAll(reg)
	return 0
}
