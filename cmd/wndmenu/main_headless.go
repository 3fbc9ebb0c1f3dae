//go:build !cgo

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/wndmenu/internal/wnd"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if opts.showVersion {
		printVersion()
		return
	}

	// Without the client the start menu can still be checked.
	log := newLogger(opts.cfg)
	f, err := wnd.ParseFile(opts.cfg.MenuPath, wnd.WithLogger(log))
	if err != nil {
		log.Error("menu does not parse", "path", opts.cfg.MenuPath, "error", err)
		os.Exit(1)
	}
	defer f.Release()
	count := 0
	if f.Root != nil {
		count = f.Root.Count()
	}
	fmt.Fprintf(os.Stderr, "%s parses (%d windows); the menu client requires a cgo/raylib build.\n", opts.cfg.MenuPath, count)
	os.Exit(1)
}
