package gui

import "testing"

func TestHoverFadeReachesTargetAndReturns(t *testing.T) {
	var h hoverFade
	h.reset(2)

	h.set(0, true)
	h.update(hoverFadeSeconds / 2)
	mid := h.value(0)
	if mid <= 0 || mid >= 1 {
		t.Fatalf("expected glow between 0 and 1 halfway through, got %.3f", mid)
	}
	h.update(hoverFadeSeconds)
	if got := h.value(0); got != 1 {
		t.Fatalf("expected full glow, got %.3f", got)
	}
	if got := h.value(1); got != 0 {
		t.Fatalf("untouched button should stay dark, got %.3f", got)
	}

	h.set(0, false)
	h.update(hoverFadeSeconds * 2)
	if got := h.value(0); got != 0 {
		t.Fatalf("expected glow to fade out, got %.3f", got)
	}
}

func TestHoverFadeIgnoresRepeatsAndBadIndexes(t *testing.T) {
	var h hoverFade
	h.reset(1)

	h.set(0, true)
	h.update(hoverFadeSeconds / 2)
	before := h.value(0)
	h.set(0, true)
	h.update(0)
	if got := h.value(0); got != before {
		t.Fatalf("repeated set restarted the tween: %.3f -> %.3f", before, got)
	}

	h.set(5, true)
	h.set(-1, true)
	if got := h.value(5); got != 0 {
		t.Fatalf("out-of-range index should read 0, got %.3f", got)
	}
}

func TestHoverFadeResetClears(t *testing.T) {
	var h hoverFade
	h.reset(1)
	h.set(0, true)
	h.update(hoverFadeSeconds)
	h.reset(3)
	for i := 0; i < 3; i++ {
		if got := h.value(i); got != 0 {
			t.Fatalf("button %d kept glow %.3f after reset", i, got)
		}
	}
}
