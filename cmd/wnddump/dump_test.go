package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/wndmenu/internal/wnd"
)

const dumpSource = `FILE_VERSION = 2;
WINDOW
  WINDOWTYPE = USER;
  SCREENRECT = UPPERLEFT: 0 0, BOTTOMRIGHT: 800 600;
  NAME = "Root";
  WINDOW
    WINDOWTYPE = PUSHBUTTON;
    SCREENRECT = UPPERLEFT: 10 20, BOTTOMRIGHT: 110 60;
    NAME = "Root:Go";
    STATUS = ENABLED+BORDER;
    INPUTCALLBACK = "GadgetStart";
    TEXT = "GO";
  END
END
`

func parseDump(t *testing.T, src string) *wnd.File {
	t.Helper()
	f, err := wnd.Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	t.Cleanup(f.Release)
	return f
}

func TestRenderListsTreeInOrder(t *testing.T) {
	out := render("menu.wnd", parseDump(t, dumpSource), false)

	root := strings.Index(out, "Root")
	child := strings.Index(out, "Root:Go")
	if root < 0 || child < 0 || child < root {
		t.Fatalf("expected root before child, got:\n%s", out)
	}
	if !strings.Contains(out, "PUSHBUTTON") || !strings.Contains(out, "10,20 100x40") {
		t.Fatalf("missing child type or rect:\n%s", out)
	}
	if !strings.Contains(out, "2 windows") {
		t.Fatalf("missing window count:\n%s", out)
	}
	if strings.Contains(out, "GadgetStart") {
		t.Fatalf("callbacks should only appear with -v:\n%s", out)
	}
}

func TestRenderVerboseShowsDetails(t *testing.T) {
	out := render("menu.wnd", parseDump(t, dumpSource), true)
	for _, want := range []string{"input: GadgetStart", "status: ENABLED+BORDER", `text: "GO"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderWithoutRoot(t *testing.T) {
	out := render("empty.wnd", parseDump(t, "FILE_VERSION = 1;\n"), false)
	if !strings.Contains(out, "no root window") {
		t.Fatalf("expected empty marker, got:\n%s", out)
	}
}
