package gui

import (
	"path/filepath"

	"github.com/appengine-ltd/wndmenu/internal/menu"
)

// Window descriptions opened by each action, looked up next to the menu
// that produced the action.
var actionMenus = map[menu.Action]string{
	menu.ActionSinglePlayer: "SinglePlayerMenu.wnd",
	menu.ActionSkirmish:     "SkirmishMenu.wnd",
	menu.ActionMultiplayer:  "MultiplayerMenu.wnd",
	menu.ActionReplay:       "ReplayMenu.wnd",
	menu.ActionLoadGame:     "LoadGameMenu.wnd",
	menu.ActionOptions:      "OptionsMenu.wnd",
}

type stepKind int

const (
	stepStay stepKind = iota
	stepOpen
	stepBack
	stepQuit
	stepStartGame
)

type step struct {
	kind stepKind
	path string
}

// menuFlow keeps the stack of opened menus. The bottom entry is the menu
// the client started with.
type menuFlow struct {
	stack []string
}

func newMenuFlow(start string) *menuFlow {
	return &menuFlow{stack: []string{start}}
}

func (f *menuFlow) current() string {
	if len(f.stack) == 0 {
		return ""
	}
	return f.stack[len(f.stack)-1]
}

func (f *menuFlow) depth() int {
	return len(f.stack)
}

// next decides what an action does. It does not change the stack; callers
// confirm with opened or wentBack once the target menu has loaded.
func (f *menuFlow) next(a menu.Action) step {
	switch a {
	case menu.ActionExit:
		return step{kind: stepQuit}
	case menu.ActionStartGame:
		return step{kind: stepStartGame}
	case menu.ActionBack:
		if len(f.stack) < 2 {
			return step{kind: stepStay}
		}
		return step{kind: stepBack, path: f.stack[len(f.stack)-2]}
	}
	name, ok := actionMenus[a]
	if !ok {
		return step{kind: stepStay}
	}
	return step{kind: stepOpen, path: filepath.Join(filepath.Dir(f.current()), name)}
}

func (f *menuFlow) opened(path string) {
	f.stack = append(f.stack, path)
}

func (f *menuFlow) wentBack() {
	if len(f.stack) > 1 {
		f.stack = f.stack[:len(f.stack)-1]
	}
}
