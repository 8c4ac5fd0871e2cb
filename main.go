package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"tally/app"
	"tally/hal"
	"tally/internal/buildinfo"
	"tally/tui"
	"tally/ui"
)

func main() {
	var headless bool
	var hz int
	var ticks uint64
	var terminal bool
	var scale int
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&terminal, "tui", false, "Run in the terminal instead of a window.")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.Parse()

	if terminal {
		if err := tui.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	w, h := ui.ScreenSize()

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		cfg := hal.HeadlessConfig{Width: w, Height: h, Hz: hz, Ticks: ticks}
		if err := hal.RunHeadless(ctx, cfg, app.New); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg := hal.WindowConfig{
		Width:  w,
		Height: h,
		Title:  "Tally (" + buildinfo.Short() + ")",
		Scale:  scale,
	}
	if err := hal.RunWindow(cfg, app.New); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
