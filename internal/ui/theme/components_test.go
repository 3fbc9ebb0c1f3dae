package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestMixClampsAndBlends(t *testing.T) {
	a := rl.NewColor(0, 0, 0, 255)
	b := rl.NewColor(200, 100, 50, 255)
	if got := Mix(a, b, -1); got != a {
		t.Fatalf("Mix(t<0)=%v want %v", got, a)
	}
	if got := Mix(a, b, 2); got != b {
		t.Fatalf("Mix(t>1)=%v want %v", got, b)
	}
	if got := Mix(a, b, 0.5); got != rl.NewColor(100, 50, 25, 255) {
		t.Fatalf("Mix(0.5)=%v", got)
	}
}

func TestOrDefault(t *testing.T) {
	if got := orDefault(rl.Color{}, Panel); got != Panel {
		t.Fatalf("zero colour should fall back, got %v", got)
	}
	c := rl.NewColor(1, 2, 3, 0)
	if got := orDefault(c, Panel); got != c {
		t.Fatalf("non-zero colour replaced: %v", got)
	}
}

func TestFitTextShrinksToWidth(t *testing.T) {
	SetTextRenderer(nil, func(text string, size int32) int32 {
		return int32(len(text)) * size / 2
	})
	defer SetTextRenderer(nil, func(text string, size int32) int32 {
		return rl.MeasureText(text, size)
	})

	if got := FitText("SINGLE PLAYER", 20, 200); got != 20 {
		t.Fatalf("fitting label shrank to %d", got)
	}
	// 13 runes at size 10 measure 65.
	if got := FitText("SINGLE PLAYER", 20, 65); got != 10 {
		t.Fatalf("FitText=%d want 10", got)
	}
	if got := FitText("SINGLE PLAYER", 20, 1); got != minFitSize {
		t.Fatalf("FitText=%d want floor %d", got, minFitSize)
	}
	if got := FitText("", 20, 1); got != 20 {
		t.Fatalf("empty text changed size to %d", got)
	}
}
