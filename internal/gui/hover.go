package gui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const hoverFadeSeconds = float32(0.18)

// hoverFade animates a per-button glow between 0 and 1. Index matches the
// renderer's button index and is reset whenever a menu loads.
type hoverFade struct {
	glow   []float32
	target []bool
	tweens []*gween.Tween
}

func (h *hoverFade) reset(n int) {
	h.glow = make([]float32, n)
	h.target = make([]bool, n)
	h.tweens = make([]*gween.Tween, n)
}

// set starts a tween when button i changes between lit and unlit.
func (h *hoverFade) set(i int, lit bool) {
	if i < 0 || i >= len(h.glow) || h.target[i] == lit {
		return
	}
	h.target[i] = lit
	to := float32(0)
	fn := ease.InQuad
	if lit {
		to = 1
		fn = ease.OutQuad
	}
	h.tweens[i] = gween.New(h.glow[i], to, hoverFadeSeconds, fn)
}

func (h *hoverFade) update(dt float32) {
	for i, tw := range h.tweens {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		h.glow[i] = v
		if done {
			h.tweens[i] = nil
		}
	}
}

func (h *hoverFade) value(i int) float32 {
	if i < 0 || i >= len(h.glow) {
		return 0
	}
	return h.glow[i]
}
