package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
	"github.com/jaminalder/elite-tic-tac-toe/internal/config"
	"github.com/jaminalder/elite-tic-tac-toe/internal/logger"
	"github.com/jaminalder/elite-tic-tac-toe/internal/terminal"
)

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file (optional)")
	flag.Parse()

	cfg := config.MustLoad(*cfgPath)
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var opts []termenv.OutputOption
	if cfg.Terminal.Plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := terminal.New(os.Stdin, os.Stdout, opts...)

	// Ctrl-C keeps its default behaviour; a read on stdin cannot be interrupted.
	if err := terminal.Run(context.Background(), r, app.NewDriver(log)); err != nil {
		log.Error("terminal stopped", zap.Error(err))
		os.Exit(1)
	}
	fmt.Fprintln(os.Stdout)
}
