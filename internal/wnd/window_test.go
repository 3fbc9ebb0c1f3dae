package wnd

import "testing"

func named(name string, kids ...*Window) *Window {
	w := NewWindow()
	w.Name = name
	for _, k := range kids {
		w.AddChild(k)
	}
	return w
}

func TestWalkPreOrder(t *testing.T) {
	root := named("root",
		named("a", named("a1"), named("a2")),
		named("b"),
	)
	var got []string
	if !root.Walk(func(w *Window) bool {
		got = append(got, w.Name)
		return true
	}) {
		t.Fatalf("walk reported early stop")
	}
	want := []string{"root", "a", "a1", "a2", "b"}
	if len(got) != len(want) {
		t.Fatalf("visited %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v want %v", got, want)
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	root := named("root", named("a", named("a1")), named("b"))
	visited := 0
	done := root.Walk(func(w *Window) bool {
		visited++
		return w.Name != "a"
	})
	if done || visited != 2 {
		t.Fatalf("done=%v visited=%d", done, visited)
	}
}

func TestFindAndCount(t *testing.T) {
	root := named("root", named("dup", named("deep")), named("dup"))
	if got := root.Find("deep"); got == nil || got.Name != "deep" {
		t.Fatalf("find deep=%v", got)
	}
	if got := root.Find("dup"); got != root.Children()[0] {
		t.Fatalf("find should return first pre-order match")
	}
	if root.Find("missing") != nil {
		t.Fatalf("expected nil for missing name")
	}
	if root.Count() != 4 {
		t.Fatalf("count=%d", root.Count())
	}
}

func TestAddChildRejectsNilAndOverflow(t *testing.T) {
	w := NewWindow()
	if w.AddChild(nil) {
		t.Fatalf("nil child accepted")
	}
	for i := 0; i < MaxChildren; i++ {
		if !w.AddChild(NewWindow()) {
			t.Fatalf("child %d rejected below capacity", i)
		}
	}
	if w.AddChild(NewWindow()) {
		t.Fatalf("child accepted past capacity")
	}
}

func TestNewWindowDefaults(t *testing.T) {
	w := NewWindow()
	if w.Type != User || w.Font != DefaultFont() {
		t.Fatalf("defaults type=%v font=%+v", w.Type, w.Font)
	}
	if w.Callbacks.Input != NoCallback || w.Callbacks.System != NoCallback {
		t.Fatalf("callbacks=%+v", w.Callbacks)
	}
}

func TestNilReleaseIsSafe(t *testing.T) {
	var w *Window
	w.Release()
	var f *File
	f.Release()
	(&File{}).Release()
}

func TestTypeString(t *testing.T) {
	if PushButton.String() != "PUSHBUTTON" || Type(99).String() != "USER" {
		t.Fatalf("unexpected type names %q %q", PushButton.String(), Type(99).String())
	}
}

func TestSuggestNearestKey(t *testing.T) {
	if got := suggest("SCREENRCT", windowKeys); got != "SCREENRECT" {
		t.Fatalf("suggest=%q", got)
	}
	if got := suggest("PUSHBUTON", windowTypeNames()); got != "PUSHBUTTON" {
		t.Fatalf("suggest=%q", got)
	}
	if got := suggest("ZZZZZZZZZZZZ", windowKeys); got != "" {
		t.Fatalf("suggest=%q want none", got)
	}
}

func TestTypeStringMatchesParseType(t *testing.T) {
	for name, typ := range typeNames {
		if got := typ.String(); got != name {
			t.Fatalf("%v.String()=%q want %q", int(typ), got, name)
		}
		if back, ok := ParseType(typ.String()); !ok || back != typ {
			t.Fatalf("ParseType(%q)=%v,%v", typ.String(), back, ok)
		}
	}
	if Type(-1).String() != "USER" {
		t.Fatalf("negative type should print USER")
	}
}

func TestSuggestLayoutKey(t *testing.T) {
	if got := suggest("LAYOUTINT", layoutKeys); got != "LAYOUTINIT" {
		t.Fatalf("suggest=%q", got)
	}
}
