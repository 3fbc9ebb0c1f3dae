package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// TextDrawFunc renders text with caller-provided font handling.
type TextDrawFunc func(text string, x, y, fontSize int32, clr rl.Color)

// TextMeasureFunc reports text width in pixels for the active font.
type TextMeasureFunc func(text string, fontSize int32) int32

var (
	textDrawFn TextDrawFunc = func(text string, x, y, fontSize int32, clr rl.Color) {
		rl.DrawText(text, x, y, fontSize, clr)
	}
	textMeasureFn TextMeasureFunc = func(text string, fontSize int32) int32 {
		return rl.MeasureText(text, fontSize)
	}
)

// minFitSize is the smallest size FitText shrinks a label to.
const minFitSize = int32(8)

// SetTextRenderer wires theme helpers to the client's font. Nil hooks keep
// the current ones.
func SetTextRenderer(draw TextDrawFunc, measure TextMeasureFunc) {
	if draw != nil {
		textDrawFn = draw
	}
	if measure != nil {
		textMeasureFn = measure
	}
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	textDrawFn(text, x, y, fontSize, clr)
}

func measureText(text string, fontSize int32) int32 {
	return textMeasureFn(text, fontSize)
}

// FitText returns the largest size up to size at which text fits within
// maxWidth. Window rects are authored for 800x600 and labels authored
// there can overflow once scaled down.
func FitText(text string, size int32, maxWidth float32) int32 {
	if text == "" || maxWidth <= 0 {
		return size
	}
	for size > minFitSize && float32(measureText(text, size)) > maxWidth {
		size--
	}
	return size
}
