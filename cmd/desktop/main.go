package main

import (
	"flag"
	"fmt"
	"os"

	gioapp "gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
	"github.com/jaminalder/elite-tic-tac-toe/internal/config"
	"github.com/jaminalder/elite-tic-tac-toe/internal/desktop"
	"github.com/jaminalder/elite-tic-tac-toe/internal/logger"
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

	go func() {
		window := new(gioapp.Window)
		window.Option(
			gioapp.Title("Elite Tic Tac Toe"),
			gioapp.Size(unit.Dp(400), unit.Dp(560)),
		)
		if err := run(window, app.NewDriver(log)); err != nil {
			log.Error("window closed with error", zap.Error(err))
			_ = log.Sync()
			os.Exit(1)
		}
		_ = log.Sync()
		os.Exit(0)
	}()
	gioapp.Main()
}

func run(window *gioapp.Window, d *app.Driver) error {
	w := desktop.New()
	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case gioapp.DestroyEvent:
			return e.Err
		case gioapp.FrameEvent:
			gtx := gioapp.NewContext(&ops, e)
			if err := d.Step(w.Frame(gtx)); err != nil {
				return err
			}
			e.Frame(gtx.Ops)
		}
	}
}
