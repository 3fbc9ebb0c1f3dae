// Command wnddump prints the window tree of one or more window description
// files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/wndmenu/internal/wnd"
)

func main() {
	var (
		verbose bool
		debug   bool
	)
	flag.BoolVar(&verbose, "v", false, "print status, callbacks and text for every window")
	flag.BoolVar(&debug, "debug", false, "log skipped and unknown keys")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: wnddump [-v] [-debug] file.wnd...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	failed := false
	for _, path := range flag.Args() {
		f, err := wnd.ParseFile(path, wnd.WithLogger(log))
		if err != nil {
			log.Error("parse failed", "path", path, "error", err)
			failed = true
			continue
		}
		fmt.Print(render(path, f, verbose))
		f.Release()
	}
	if failed {
		os.Exit(1)
	}
}
