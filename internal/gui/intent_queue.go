package gui

import "github.com/appengine-ltd/wndmenu/internal/menu"

// actionQueue buffers actions produced while reading input so the menu is
// only swapped once per frame, after input for that frame is done.
type actionQueue struct {
	ch chan menu.Action
}

func newActionQueue(size int) *actionQueue {
	if size < 1 {
		size = 16
	}
	return &actionQueue{ch: make(chan menu.Action, size)}
}

func (q *actionQueue) enqueue(a menu.Action) {
	if q == nil || a == menu.ActionNone {
		return
	}
	select {
	case q.ch <- a:
	default:
		// Saturated; a frame never produces more than a handful.
	}
}

func (q *actionQueue) dequeue() (menu.Action, bool) {
	if q == nil {
		return menu.ActionNone, false
	}
	select {
	case a := <-q.ch:
		return a, true
	default:
		return menu.ActionNone, false
	}
}
