package gui

import (
	"testing"

	"github.com/appengine-ltd/wndmenu/internal/menu"
	"github.com/appengine-ltd/wndmenu/internal/wnd"
)

func tabButtons(stops ...bool) []menu.Button {
	out := make([]menu.Button, len(stops))
	for i, stop := range stops {
		w := wnd.NewWindow()
		w.Status.TabStop = stop
		out[i] = menu.Button{Window: w}
	}
	return out
}

func TestNextTabStopSkipsNonStopsAndWraps(t *testing.T) {
	buttons := tabButtons(true, false, true)

	if got := nextTabStop(buttons, -1, 1); got != 0 {
		t.Fatalf("expected first stop 0, got %d", got)
	}
	if got := nextTabStop(buttons, 0, 1); got != 2 {
		t.Fatalf("expected to skip button 1, got %d", got)
	}
	if got := nextTabStop(buttons, 2, 1); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := nextTabStop(buttons, 0, -1); got != 2 {
		t.Fatalf("expected reverse wrap to 2, got %d", got)
	}
	if got := nextTabStop(buttons, -1, -1); got != 2 {
		t.Fatalf("expected last stop on reverse entry, got %d", got)
	}
}

func TestNextTabStopIgnoresDisabled(t *testing.T) {
	buttons := tabButtons(true, true)
	buttons[1].Window.Status.NoInput = true
	if got := nextTabStop(buttons, 0, 1); got != 0 {
		t.Fatalf("expected focus to stay on the only usable stop, got %d", got)
	}

	none := tabButtons(false, false)
	if got := nextTabStop(none, -1, 1); got != -1 {
		t.Fatalf("expected -1 without stops, got %d", got)
	}
	if got := nextTabStop(nil, 3, 1); got != 3 {
		t.Fatalf("empty menus leave focus alone, got %d", got)
	}
}

func TestActionQueueOrderAndNone(t *testing.T) {
	q := newActionQueue(2)
	q.enqueue(menu.ActionNone)
	q.enqueue(menu.ActionOptions)
	q.enqueue(menu.ActionBack)
	q.enqueue(menu.ActionExit)

	if a, ok := q.dequeue(); !ok || a != menu.ActionOptions {
		t.Fatalf("expected options first, got %v %v", a, ok)
	}
	if a, ok := q.dequeue(); !ok || a != menu.ActionBack {
		t.Fatalf("expected back second, got %v %v", a, ok)
	}
	if _, ok := q.dequeue(); ok {
		t.Fatalf("saturated enqueue should have been dropped")
	}

	var nilQueue *actionQueue
	nilQueue.enqueue(menu.ActionExit)
	if _, ok := nilQueue.dequeue(); ok {
		t.Fatalf("nil queue must be empty")
	}
}
