package menu

import (
	"fmt"
	"log/slog"

	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Menus are authored against this resolution.
	BaseWidth  = 800
	BaseHeight = 600

	// MaxButtons bounds how many push buttons one menu exposes.
	MaxButtons = 32
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	case ButtonDisabled:
		return "disabled"
	default:
		return "normal"
	}
}

// Button is a push button found in the loaded tree. It is only valid until
// the next load.
type Button struct {
	Window   *wnd.Window
	Callback string
	Action   Action
}

// RenderData is the screen-space geometry and normalised colours for one
// window.
type RenderData struct {
	Rect     rl.Rectangle
	Fill     rl.Vector4
	Border   rl.Vector4
	FontSize float32
}

// Renderer owns a parsed menu tree and tracks pointer interaction with its
// push buttons.
type Renderer struct {
	log *slog.Logger

	file   *wnd.File
	source string

	buttons []Button
	states  []ButtonState

	screenW, screenH int32
	scaleX, scaleY   float32
}

func NewRenderer(log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Renderer{
		log:     log,
		screenW: BaseWidth,
		screenH: BaseHeight,
		scaleX:  1,
		scaleY:  1,
	}
}

// SetScreenSize updates the per-axis scale against the authored resolution.
// Non-positive sizes are ignored.
func (r *Renderer) SetScreenSize(w, h int32) {
	if w <= 0 || h <= 0 {
		return
	}
	r.screenW, r.screenH = w, h
	r.scaleX = float32(w) / BaseWidth
	r.scaleY = float32(h) / BaseHeight
}

func (r *Renderer) Scale() rl.Vector2 {
	return rl.NewVector2(r.scaleX, r.scaleY)
}

// LoadMenu parses path and replaces the current menu. On error the current
// menu is left untouched.
func (r *Renderer) LoadMenu(path string) error {
	f, err := wnd.ParseFile(path, wnd.WithLogger(r.log))
	if err != nil {
		return fmt.Errorf("load menu %s: %w", path, err)
	}
	r.swap(f, path)
	return nil
}

// LoadMenuSource is LoadMenu for an in-memory description.
func (r *Renderer) LoadMenuSource(name string, src []byte) error {
	f, err := wnd.Parse(src, wnd.WithLogger(r.log), wnd.WithSourceName(name))
	if err != nil {
		return fmt.Errorf("load menu %s: %w", name, err)
	}
	r.swap(f, name)
	return nil
}

func (r *Renderer) swap(f *wnd.File, source string) {
	old := r.file
	r.file = f
	r.source = source
	r.buttons = r.extractButtons(f.Root)
	r.states = make([]ButtonState, len(r.buttons))
	old.Release()
	r.log.Info("menu loaded", "source", source, "root", r.Name(), "buttons", len(r.buttons))
}

// Unload releases the current tree.
func (r *Renderer) Unload() {
	r.file.Release()
	r.file = nil
	r.source = ""
	r.buttons = nil
	r.states = nil
}

func (r *Renderer) extractButtons(root *wnd.Window) []Button {
	var out []Button
	dropped := 0
	root.Walk(func(w *wnd.Window) bool {
		if w.Type != wnd.PushButton {
			return true
		}
		if len(out) >= MaxButtons {
			dropped++
			return true
		}
		out = append(out, Button{
			Window:   w,
			Callback: w.Callbacks.Input,
			Action:   ResolveAction(w.Callbacks.Input),
		})
		return true
	})
	if dropped > 0 {
		r.log.Debug("buttons dropped, capacity reached", "source", r.source, "dropped", dropped, "max", MaxButtons)
	}
	return out
}

func (r *Renderer) File() *wnd.File {
	return r.file
}

func (r *Renderer) Source() string {
	return r.source
}

// Name returns the root window name of the loaded menu.
func (r *Renderer) Name() string {
	if r.file == nil || r.file.Root == nil {
		return ""
	}
	return r.file.Root.Name
}

func (r *Renderer) Buttons() []Button {
	return r.buttons
}

func (r *Renderer) ButtonCount() int {
	return len(r.buttons)
}

func (r *Renderer) State(i int) ButtonState {
	if i < 0 || i >= len(r.states) {
		return ButtonNormal
	}
	return r.states[i]
}

// Hovered returns the index of the first hovered or pressed button, or -1.
func (r *Renderer) Hovered() int {
	for i, s := range r.states {
		if s == ButtonHovered || s == ButtonPressed {
			return i
		}
	}
	return -1
}

func (r *Renderer) toMenuSpace(x, y float32) (float32, float32) {
	return x / r.scaleX, y / r.scaleY
}

func contains(rect wnd.Rect, x, y float32) bool {
	return x >= float32(rect.X) && x < float32(rect.X+rect.Width) &&
		y >= float32(rect.Y) && y < float32(rect.Y+rect.Height)
}

func acceptsInput(w *wnd.Window) bool {
	return !w.Status.NoInput
}

// UpdateMouse recomputes every button state from a pointer sample in screen
// coordinates.
func (r *Renderer) UpdateMouse(x, y float32, down bool) {
	mx, my := r.toMenuSpace(x, y)
	for i, b := range r.buttons {
		switch {
		case !acceptsInput(b.Window):
			r.states[i] = ButtonDisabled
		case contains(b.Window.Rect, mx, my) && down:
			r.states[i] = ButtonPressed
		case contains(b.Window.Rect, mx, my):
			r.states[i] = ButtonHovered
		default:
			r.states[i] = ButtonNormal
		}
	}
}

// HandleClick returns the action of the first button, in tree order, under
// the screen point. Overlapping buttons are not disambiguated.
func (r *Renderer) HandleClick(x, y float32) Action {
	_, a := r.ButtonAt(x, y)
	return a
}

// ButtonAt returns the index and action of the first button under the
// screen point, or -1 and ActionNone.
func (r *Renderer) ButtonAt(x, y float32) (int, Action) {
	mx, my := r.toMenuSpace(x, y)
	for i, b := range r.buttons {
		if !acceptsInput(b.Window) {
			continue
		}
		if contains(b.Window.Rect, mx, my) {
			r.log.Debug("button clicked", "name", b.Window.Name, "callback", b.Callback, "action", b.Action)
			return i, b.Action
		}
	}
	return -1, ActionNone
}

// RenderData scales w to the current screen and normalises its enabled
// layer-0 colours.
func (r *Renderer) RenderData(w *wnd.Window) RenderData {
	return RenderData{
		Rect: rl.NewRectangle(
			float32(w.Rect.X)*r.scaleX,
			float32(w.Rect.Y)*r.scaleY,
			float32(w.Rect.Width)*r.scaleX,
			float32(w.Rect.Height)*r.scaleY,
		),
		Fill:     normalize(w.EnabledDrawData[0].Color),
		Border:   normalize(w.EnabledDrawData[0].BorderColor),
		FontSize: float32(w.Font.Size) * r.scaleY,
	}
}

func normalize(c wnd.Color) rl.Vector4 {
	return rl.NewVector4(
		float32(c.R)/255,
		float32(c.G)/255,
		float32(c.B)/255,
		float32(c.A)/255,
	)
}

// ToColor converts a normalised colour back to an 8-bit raylib colour.
func ToColor(v rl.Vector4) rl.Color {
	return rl.NewColor(
		uint8(v.X*255+0.5),
		uint8(v.Y*255+0.5),
		uint8(v.Z*255+0.5),
		uint8(v.W*255+0.5),
	)
}
