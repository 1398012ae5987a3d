package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"

	"github.com/xyproto/imeremap"
	"github.com/xyproto/imeremap/tty"
)

func main() {
	var (
		url        = flag.String("url", "https://example.com/", "URL of the focused window, try "+imeremap.CroshURL)
		configFile = flag.String("config", "", "TOML file with an alternative keymap and blacklist")
		debug      = flag.Bool("debug", false, "log key events to stderr")
	)
	flag.Parse()

	debugEnabled := *debug || env.Bool("IMEREMAP_DEBUG")
	level := slog.LevelInfo
	if debugEnabled {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []imeremap.Option{imeremap.WithLogger(logger)}
	if debugEnabled {
		opts = append(opts, imeremap.WithDebug(true))
	}
	if *configFile != "" {
		cfg, err := imeremap.LoadConfigFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, cfg.Options()...)
	}

	t, err := tty.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer t.Close()

	host := newTerminalHost("imeremap-demo", *url, logger)
	hijack := imeremap.NewHijack(host)
	engine := imeremap.NewEngine(host, opts...)
	engine.Install(hijack)

	host.dispatch(imeremap.Activate, engineID)
	host.dispatch(imeremap.Focus, imeremap.InputContext{ContextID: 1, Type: "text"})

	fmt.Print("Emacs keys in a text field. Press ESC twice or ctrl-c to exit.\r\n")
	width := tty.Width()
	escCount := 0
	for {
		host.runPending()
		kd, raw, ok := t.ReadKey()
		if exitKey(raw) {
			break
		}
		if !ok {
			continue
		}
		if kd.Code == "Escape" {
			escCount++
			if escCount > 1 {
				break
			}
			continue
		}
		escCount = 0
		host.keyEvent(kd)
		fmt.Printf("\r\033[K%s", host.field.Render(width-1))
	}
	host.dispatch(imeremap.Blur, 1)
	host.dispatch(imeremap.Deactivated, engineID)
	fmt.Printf("\r\n%s\r\n", host.field.String())
}
