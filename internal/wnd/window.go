package wnd

// Window is one parsed element of a window description. A window owns its
// children exclusively; there are no parent links.
type Window struct {
	Name               string
	Type               Type
	Rect               Rect
	CreationResolution Size
	Status             Status
	Callbacks          Callbacks
	Font               Font
	TextColor          TextColors
	EnabledDrawData    DrawLayers
	DisabledDrawData   DrawLayers
	HiliteDrawData     DrawLayers
	Text               string
	TooltipText        string
	TooltipDelay       int32

	// Line is the source line of the WINDOW keyword that opened the block.
	Line int

	children []*Window
}

func NewWindow() *Window {
	return &Window{
		Type:      User,
		Callbacks: defaultCallbacks(),
		Font:      DefaultFont(),
	}
}

// AddChild appends child in declaration order. It returns false and drops
// the child once MaxChildren is reached.
func (w *Window) AddChild(child *Window) bool {
	if child == nil {
		return false
	}
	if len(w.children) >= MaxChildren {
		return false
	}
	w.children = append(w.children, child)
	return true
}

// Children returns the window's children. The slice must not be modified.
func (w *Window) Children() []*Window {
	return w.children
}

// Release recursively drops every descendant.
func (w *Window) Release() {
	if w == nil {
		return
	}
	for i, c := range w.children {
		c.Release()
		w.children[i] = nil
	}
	w.children = nil
}

// Walk visits w and its descendants in pre-order. Returning false from fn
// stops the walk; Walk reports whether it ran to completion.
func (w *Window) Walk(fn func(*Window) bool) bool {
	if w == nil {
		return true
	}
	if !fn(w) {
		return false
	}
	for _, c := range w.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first window in pre-order named name.
func (w *Window) Find(name string) *Window {
	var found *Window
	w.Walk(func(n *Window) bool {
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns the number of windows in the subtree rooted at w.
func (w *Window) Count() int {
	n := 0
	w.Walk(func(*Window) bool {
		n++
		return true
	})
	return n
}
