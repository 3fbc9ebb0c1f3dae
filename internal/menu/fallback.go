package menu

import (
	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type FallbackItem struct {
	Label  string
	Rect   wnd.Rect
	Action Action
}

// Fallback is the built-in main menu shown when no window description can
// be loaded. Items are laid out in the authored 800x600 space.
type Fallback struct {
	items  []FallbackItem
	cursor int
	hover  int

	scaleX, scaleY float32
}

func NewFallback() *Fallback {
	labels := []struct {
		label  string
		action Action
	}{
		{"Single Player", ActionSinglePlayer},
		{"Skirmish", ActionSkirmish},
		{"Multiplayer", ActionMultiplayer},
		{"Load Game", ActionLoadGame},
		{"Options", ActionOptions},
		{"Exit", ActionExit},
	}
	items := make([]FallbackItem, 0, len(labels))
	for i, l := range labels {
		items = append(items, FallbackItem{
			Label:  l.label,
			Rect:   wnd.Rect{X: 300, Y: 160 + int32(i)*60, Width: 200, Height: 40},
			Action: l.action,
		})
	}
	return &Fallback{items: items, hover: -1, scaleX: 1, scaleY: 1}
}

func (f *Fallback) SetScreenSize(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	f.scaleX = float32(w) / BaseWidth
	f.scaleY = float32(h) / BaseHeight
}

func (f *Fallback) Items() []FallbackItem {
	return f.items
}

// Cursor is the keyboard-selected item.
func (f *Fallback) Cursor() int {
	return f.cursor
}

// Hovered is the item under the pointer, or -1.
func (f *Fallback) Hovered() int {
	return f.hover
}

func (f *Fallback) Next() {
	f.cursor = wrapIndex(f.cursor+1, len(f.items))
}

func (f *Fallback) Prev() {
	f.cursor = wrapIndex(f.cursor-1, len(f.items))
}

// Activate returns the action of the keyboard-selected item.
func (f *Fallback) Activate() Action {
	if len(f.items) == 0 {
		return ActionNone
	}
	return f.items[f.cursor].Action
}

func (f *Fallback) itemAt(x, y float32) int {
	mx, my := x/f.scaleX, y/f.scaleY
	for i, it := range f.items {
		if contains(it.Rect, mx, my) {
			return i
		}
	}
	return -1
}

// UpdateMouse tracks the hovered item; hovering also moves the cursor.
func (f *Fallback) UpdateMouse(x, y float32) {
	f.hover = f.itemAt(x, y)
	if f.hover >= 0 {
		f.cursor = f.hover
	}
}

func (f *Fallback) HandleClick(x, y float32) Action {
	i := f.itemAt(x, y)
	if i < 0 {
		return ActionNone
	}
	return f.items[i].Action
}

func (f *Fallback) ItemRect(i int) rl.Rectangle {
	if i < 0 || i >= len(f.items) {
		return rl.Rectangle{}
	}
	r := f.items[i].Rect
	return rl.NewRectangle(
		float32(r.X)*f.scaleX,
		float32(r.Y)*f.scaleY,
		float32(r.Width)*f.scaleX,
		float32(r.Height)*f.scaleY,
	)
}

func wrapIndex(i int, size int) int {
	if size <= 0 {
		return 0
	}
	for i < 0 {
		i += size
	}
	for i >= size {
		i -= size
	}
	return i
}
