package gui

import (
	"github.com/appengine-ltd/wndmenu/internal/menu"
	"github.com/appengine-ltd/wndmenu/internal/ui/theme"
	"github.com/appengine-ltd/wndmenu/internal/wnd"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var backdropColor = theme.Backdrop

const (
	statusMargin = int32(12)
	minFontSize  = int32(8)
)

func toRL(c wnd.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func themeButtonState(s menu.ButtonState) theme.ButtonState {
	switch s {
	case menu.ButtonHovered:
		return theme.ButtonHovered
	case menu.ButtonPressed:
		return theme.ButtonPressed
	case menu.ButtonDisabled:
		return theme.ButtonDisabled
	default:
		return theme.ButtonNormal
	}
}

// fontPixels turns a scaled point size into a draw size, with Size 0 in the
// description falling back to the body size.
func fontPixels(size float32) int32 {
	px := int32(size + 0.5)
	if px <= 0 {
		return theme.Type.Body
	}
	if px < minFontSize {
		return minFontSize
	}
	return px
}
