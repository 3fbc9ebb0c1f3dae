package gui

import (
	"github.com/appengine-ltd/wndmenu/internal/menu"
	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// tabDirection reports +1 for Tab, -1 for Shift+Tab and 0 otherwise.
func tabDirection() int {
	if !rl.IsKeyPressed(rl.KeyTab) {
		return 0
	}
	if shiftDown() {
		return -1
	}
	return 1
}

func activatePressed() bool {
	return rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeySpace)
}

func focusable(w *wnd.Window) bool {
	return w.Status.TabStop && !w.Status.NoInput && !w.Status.Hidden
}

// nextTabStop moves keyboard focus from cur in dir, wrapping, and returns
// the next focusable button or -1 when none is.
func nextTabStop(buttons []menu.Button, cur, dir int) int {
	n := len(buttons)
	if n == 0 || dir == 0 {
		return cur
	}
	for range n {
		switch {
		case cur < 0 && dir > 0:
			cur = 0
		case cur < 0:
			cur = n - 1
		default:
			cur = ((cur+dir)%n + n) % n
		}
		if focusable(buttons[cur].Window) {
			return cur
		}
	}
	return -1
}
