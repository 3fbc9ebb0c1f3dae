package gui

import (
	"fmt"

	"github.com/appengine-ltd/wndmenu/internal/menu"
	"github.com/appengine-ltd/wndmenu/internal/ui/theme"
	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (ui *menuUI) drawWindowMenu() {
	f := ui.renderer.File()
	if f == nil || f.Root == nil {
		return
	}
	ui.drawWindow(f.Root)
}

// drawWindow paints w and then its children, so later siblings draw on top.
// Hidden windows hide their whole subtree.
func (ui *menuUI) drawWindow(w *wnd.Window) {
	if w.Status.Hidden {
		return
	}
	rd := ui.renderer.RenderData(w)
	fill := menu.ToColor(rd.Fill)
	border := menu.ToColor(rd.Border)
	if w.Status.SeeThru {
		fill.A = 0
	}

	switch w.Type {
	case wnd.PushButton:
		state := menu.ButtonNormal
		i, ok := ui.buttonAt[w]
		if ok {
			state = ui.renderer.State(i)
			if state == menu.ButtonNormal && i == ui.focus {
				state = menu.ButtonHovered
			}
		} else {
			i = -1
		}
		theme.DrawButton(rd.Rect, themeButtonState(state), w.Text, ui.hover.value(i), theme.ButtonStyle{
			Fill:   fill,
			Border: border,
			Hilite: toRL(w.HiliteDrawData[0].Color),
			Text:   toRL(w.TextColor.Enabled.Color),
			Size:   fontPixels(rd.FontSize),
		})
	default:
		theme.DrawWindow(rd.Rect, fill, border, w.Status.Border)
		if w.Text != "" {
			clr := toRL(w.TextColor.Enabled.Color)
			if clr == (rl.Color{}) {
				clr = theme.TextPrimary
			}
			theme.DrawLabel(w.Text, rd.Rect, fontPixels(rd.FontSize), clr)
		}
	}

	for _, c := range w.Children() {
		ui.drawWindow(c)
	}
}

func (ui *menuUI) drawFallback() {
	title := rl.NewRectangle(0, 80*ui.renderer.Scale().Y, float32(ui.width), 40*ui.renderer.Scale().Y)
	theme.DrawLabel("Main Menu", title, theme.Type.Title, theme.TextPrimary)

	hovered := ui.fallback.Hovered()
	for i, item := range ui.fallback.Items() {
		state := theme.ButtonNormal
		switch {
		case i == hovered && rl.IsMouseButtonDown(rl.MouseButtonLeft):
			state = theme.ButtonPressed
		case i == hovered || i == ui.fallback.Cursor():
			state = theme.ButtonHovered
		}
		theme.DrawButton(ui.fallback.ItemRect(i), state, item.Label, 0, theme.ButtonStyle{})
	}
}

func (ui *menuUI) drawStatus() {
	y := ui.height - theme.Type.Small - statusMargin
	theme.DrawHintText(ui.status, statusMargin, y-theme.Type.Small-4)

	build := ui.cfg.Version
	if build == "" {
		build = "dev"
	}
	hint := fmt.Sprintf("%s  |  %s", ui.renderer.Source(), build)
	if ui.screen == screenFallback {
		hint = fmt.Sprintf("built-in menu  |  %s  |  Up/Down + Enter", build)
	}
	theme.DrawHintText(hint, statusMargin, y)
}
