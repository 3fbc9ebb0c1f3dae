package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/appengine-ltd/wndmenu/internal/config"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	writeConfig bool
	configPath  string
	cfg         config.Config
}

func parseFlags(args []string) (options, error) {
	var opts options
	def := config.Default()
	opts.cfg = def

	fs := flag.NewFlagSet("wndmenu", flag.ContinueOnError)
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&opts.writeConfig, "write-config", false, "save the effective settings to -config and exit")
	fs.StringVar(&opts.configPath, "config", "", "settings file (default ./"+config.DefaultPath+" or the user config dir)")
	fs.StringVar(&opts.cfg.MenuPath, "menu", def.MenuPath, "window description to open first")
	fs.Var(int32Flag{&opts.cfg.ScreenWidth}, "width", "window width in pixels")
	fs.Var(int32Flag{&opts.cfg.ScreenHeight}, "height", "window height in pixels")
	fs.Var(int32Flag{&opts.cfg.TargetFPS}, "fps", "target frame rate")
	fs.BoolVar(&opts.cfg.Fullscreen, "fullscreen", def.Fullscreen, "start fullscreen")
	fs.StringVar(&opts.cfg.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if opts.configPath == "" {
		opts.configPath = config.Resolve()
	}
	fromFile, err := config.Load(opts.configPath)
	if err != nil {
		return opts, err
	}
	config.Merge(&opts.cfg, fromFile, explicit)
	return opts, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
}

func printVersion() {
	fmt.Printf("wndmenu %s (%s) %s\n", version, commit, date)
}

type int32Flag struct {
	v *int32
}

func (f int32Flag) String() string {
	if f.v == nil {
		return "0"
	}
	return fmt.Sprint(*f.v)
}

func (f int32Flag) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*f.v = int32(n)
	return nil
}
