package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/imeremap"
)

func main() {
	var (
		listKeymap = flag.Bool("keymap", false, "list the active keymap")
		configFile = flag.String("config", "", "TOML file with an alternative keymap")
	)
	flag.Parse()

	km := imeremap.DefaultKeymap
	if *configFile != "" {
		cfg, err := imeremap.LoadConfigFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		km = cfg.Keymap
	}

	if *listKeymap {
		for _, m := range km {
			fmt.Printf("%-8s -> %s\n", m.Match, strings.Join(m.Emit, " "))
		}
	}

	exitCode := 0
	for _, arg := range flag.Args() {
		k := imeremap.DecodeChord(arg)
		fmt.Printf("%q: ctrl=%t shift=%t alt=%t code=%q canonical=%q\n", arg, k.Ctrl, k.Shift, k.Alt, k.Code, k.String())
		if _, err := imeremap.ParseChord(arg); err != nil {
			fmt.Printf("  invalid: %v\n", err)
			exitCode = 1
			continue
		}
		if m, found := km.Find(k.String()); found {
			fmt.Printf("  emits: %s\n", strings.Join(m.Emit, " "))
		}
	}
	os.Exit(exitCode)
}
