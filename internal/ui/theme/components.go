package theme

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	CornerRadius   = float32(0.08)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// ButtonStyle carries the colours a window description asked for. Zero
// colours fall back to the palette.
type ButtonStyle struct {
	Fill   rl.Color
	Border rl.Color
	Hilite rl.Color
	Text   rl.Color
	Size   int32
}

// DrawWindow fills rect and optionally outlines it. Transparent fills are
// skipped so see-through containers stay invisible.
func DrawWindow(rect rl.Rectangle, fill, border rl.Color, outline bool) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	if fill.A > 0 {
		rl.DrawRectangleRec(rect, fill)
	}
	if outline && border.A > 0 {
		rl.DrawRectangleLinesEx(rect, BorderWidth, border)
	}
}

// DrawButton draws a push button. glow in [0,1] blends the fill toward the
// hilite colour and is driven by the caller's hover tween.
func DrawButton(rect rl.Rectangle, state ButtonState, text string, glow float32, style ButtonStyle) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	fill := orDefault(style.Fill, Panel)
	stroke := orDefault(style.Border, Border)
	hilite := orDefault(style.Hilite, PanelRaised)
	label := orDefault(style.Text, TextPrimary)
	strokeWidth := BorderWidth

	fill = Mix(fill, hilite, glow)
	switch state {
	case ButtonHovered:
		stroke = AccentEmber
		strokeWidth = BorderWidthFocus
	case ButtonPressed:
		fill = Mix(fill, AccentPressed, 0.35)
		stroke = AccentEmber
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)

	size := style.Size
	if size <= 0 {
		size = Type.Body
	}
	DrawLabel(text, rect, size, label)
}

// DrawLabel centres text inside rect.
func DrawLabel(text string, rect rl.Rectangle, size int32, clr rl.Color) {
	if text == "" {
		return
	}
	size = FitText(text, size, rect.Width-2*BorderWidthFocus)
	w := measureText(text, size)
	x := int32(rect.X + (rect.Width-float32(w))/2)
	y := int32(rect.Y + (rect.Height-float32(size))/2 - 1)
	drawText(text, x, y, size, clr)
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	drawText(text, x, y, Type.Small, TextMuted)
}

func orDefault(c, def rl.Color) rl.Color {
	if c == (rl.Color{}) {
		return def
	}
	return c
}

// Mix linearly blends a toward b by t, clamped to [0,1].
func Mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
