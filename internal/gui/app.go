package gui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/appengine-ltd/wndmenu/internal/config"
	"github.com/appengine-ltd/wndmenu/internal/menu"
	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	Config    config.Config
	Log       *slog.Logger
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	ui := newMenuUI(a.cfg)
	return ui.Run()
}

type screen int

const (
	screenWindow screen = iota
	screenFallback
)

type menuUI struct {
	cfg AppConfig
	log *slog.Logger

	width  int32
	height int32
	quit   bool

	screen   screen
	renderer *menu.Renderer
	fallback *menu.Fallback
	flow     *menuFlow
	hover    hoverFade
	buttonAt map[*wnd.Window]int
	focus    int
	actions  *actionQueue

	status   string
	lastTick time.Time
}

func newMenuUI(cfg AppConfig) *menuUI {
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	ui := &menuUI{
		cfg:      cfg,
		log:      log,
		width:    cfg.Config.ScreenWidth,
		height:   cfg.Config.ScreenHeight,
		renderer: menu.NewRenderer(log),
		fallback: menu.NewFallback(),
		flow:     newMenuFlow(cfg.Config.MenuPath),
		focus:    -1,
		actions:  newActionQueue(8),
	}
	ui.resize(ui.width, ui.height)
	if err := ui.openMenu(cfg.Config.MenuPath); err != nil {
		log.Warn("using built-in menu", "error", err)
		ui.screen = screenFallback
		ui.status = "Menu failed to load; showing the built-in menu."
	}
	ui.lastTick = time.Now()
	return ui
}

func (ui *menuUI) Run() error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if ui.cfg.Config.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(ui.width, ui.height, "wndmenu")
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.cfg.Config.TargetFPS)
	initTypography()

	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(ui.lastTick)
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		ui.update(delta)

		rl.BeginDrawing()
		rl.ClearBackground(backdropColor)
		ui.draw()
		rl.EndDrawing()
	}

	shutdownTypography()
	rl.CloseWindow()
	ui.renderer.Unload()
	return nil
}

func (ui *menuUI) resize(w, h int32) {
	ui.width, ui.height = w, h
	ui.renderer.SetScreenSize(w, h)
	ui.fallback.SetScreenSize(w, h)
}

// openMenu loads path and rebuilds the per-button lookup. On failure the
// current menu stays active.
func (ui *menuUI) openMenu(path string) error {
	if err := ui.renderer.LoadMenu(path); err != nil {
		return err
	}
	buttons := ui.renderer.Buttons()
	ui.buttonAt = make(map[*wnd.Window]int, len(buttons))
	for i, b := range buttons {
		ui.buttonAt[b.Window] = i
	}
	ui.hover.reset(len(buttons))
	ui.focus = -1
	ui.screen = screenWindow
	return nil
}

func (ui *menuUI) update(delta time.Duration) {
	ui.hover.update(float32(delta.Seconds()))

	switch ui.screen {
	case screenWindow:
		ui.updateWindowMenu()
	case screenFallback:
		ui.updateFallback()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.actions.enqueue(menu.ActionBack)
	}
	for {
		a, ok := ui.actions.dequeue()
		if !ok {
			return
		}
		ui.handleAction(a)
	}
}

func (ui *menuUI) updateWindowMenu() {
	pos := rl.GetMousePosition()
	ui.renderer.UpdateMouse(pos.X, pos.Y, rl.IsMouseButtonDown(rl.MouseButtonLeft))

	buttons := ui.renderer.Buttons()
	if dir := tabDirection(); dir != 0 {
		ui.focus = nextTabStop(buttons, ui.focus, dir)
	}
	for i := range buttons {
		s := ui.renderer.State(i)
		ui.hover.set(i, s == menu.ButtonHovered || s == menu.ButtonPressed || i == ui.focus)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		ui.actions.enqueue(ui.renderer.HandleClick(pos.X, pos.Y))
	}
	if ui.focus >= 0 && ui.focus < len(buttons) && activatePressed() {
		ui.actions.enqueue(buttons[ui.focus].Action)
	}
}

func (ui *menuUI) updateFallback() {
	pos := rl.GetMousePosition()
	ui.fallback.UpdateMouse(pos.X, pos.Y)
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.fallback.Next()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.fallback.Prev()
	}
	if activatePressed() {
		ui.actions.enqueue(ui.fallback.Activate())
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		ui.actions.enqueue(ui.fallback.HandleClick(pos.X, pos.Y))
	}
}

// handleAction is the game-flow side of a resolved click.
func (ui *menuUI) handleAction(a menu.Action) {
	if a == menu.ActionNone {
		return
	}
	ui.log.Info("menu action", "action", a, "menu", ui.renderer.Name())

	st := ui.flow.next(a)
	switch st.kind {
	case stepQuit:
		ui.quit = true
	case stepStartGame:
		ui.status = "Starting game..."
	case stepOpen:
		if err := ui.openMenu(st.path); err != nil {
			ui.reportOpenError(a, err)
			return
		}
		ui.flow.opened(st.path)
		ui.status = ""
	case stepBack:
		if err := ui.openMenu(st.path); err != nil {
			ui.reportOpenError(a, err)
			return
		}
		ui.flow.wentBack()
		ui.status = ""
	case stepStay:
		if ui.screen == screenFallback {
			ui.status = fmt.Sprintf("%s is not available.", a)
		}
	}
}

func (ui *menuUI) reportOpenError(a menu.Action, err error) {
	if errors.Is(err, wnd.ErrFileNotFound) {
		ui.log.Debug("no menu for action", "action", a, "error", err)
		ui.status = fmt.Sprintf("%s is not available.", a)
		return
	}
	ui.log.Error("open menu", "action", a, "error", err)
	ui.status = "Menu failed to load."
}

func (ui *menuUI) draw() {
	switch ui.screen {
	case screenWindow:
		ui.drawWindowMenu()
	case screenFallback:
		ui.drawFallback()
	}
	ui.drawStatus()
}
