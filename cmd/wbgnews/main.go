package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JawandS/WbgNews/internal/app"
	"github.com/JawandS/WbgNews/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/wbgnews/config.toml)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	pollSeconds := flag.Int("poll", 0, "auto refresh interval in seconds (optional, off by default)")
	once := flag.Bool("once", false, "fetch meetings once, print them and exit")
	outputFormat := flag.String("format", app.FormatText, "output format for -once: text or html")
	variantName := flag.String("variant", render.Compact.String(), "card variant for -once: compact or detailed")
	flag.Parse()

	variant, err := render.ParseVariant(*variantName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wbgnews: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Once:       *once,
		Format:     *outputFormat,
		Variant:    variant,
		Output:     os.Stdout,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Second
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "wbgnews: %v\n", err)
		return 1
	}
	return 0
}
