package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Marketplace/internal/cli/commands"
	"Marketplace/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// -h до команды показывает справку по командам, а не только по флагам
	flag.Usage = func() { fmt.Fprint(commands.Out, commands.FormatGlobalUsage()) }
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Fprintf(commands.Out, "Marketplace CLI %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}
