//go:build cgo

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/wndmenu/internal/config"
	"github.com/appengine-ltd/wndmenu/internal/gui"
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
	if opts.writeConfig {
		if err := config.Save(opts.configPath, opts.cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", opts.configPath)
		return
	}

	log := newLogger(opts.cfg)
	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Config:    opts.cfg,
		Log:       log,
	})

	if err := app.Run(); err != nil {
		log.Error("client stopped", "error", err)
		os.Exit(1)
	}
}
