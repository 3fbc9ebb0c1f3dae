package main

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/wndmenu/internal/wnd"
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

type dumper struct {
	verbose bool
	b       strings.Builder
}

func render(source string, f *wnd.File, verbose bool) string {
	d := &dumper{verbose: verbose}
	d.b.WriteString(headerStyle.Render(source))
	d.b.WriteByte('\n')
	fmt.Fprintf(&d.b, "version %d  layout %s / %s / %s\n", f.Version, f.Layout.Init, f.Layout.Update, f.Layout.Shutdown)
	if f.Root == nil {
		d.b.WriteString(detailStyle.Render("(no root window)"))
		d.b.WriteByte('\n')
		return d.b.String()
	}
	d.window(f.Root, 0)
	fmt.Fprintf(&d.b, "%d windows\n", f.Root.Count())
	return d.b.String()
}

func (d *dumper) window(w *wnd.Window, depth int) {
	indent := strings.Repeat("  ", depth)
	name := w.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&d.b, "%s%s %s %s\n", indent,
		nameStyle.Render(name),
		typeStyle.Render(w.Type.String()),
		detailStyle.Render(fmt.Sprintf("%d,%d %dx%d", w.Rect.X, w.Rect.Y, w.Rect.Width, w.Rect.Height)),
	)
	if d.verbose {
		d.detail(indent, "status", w.Status.String())
		d.detail(indent, "input", w.Callbacks.Input)
		d.detail(indent, "system", w.Callbacks.System)
		d.detail(indent, "draw", w.Callbacks.Draw)
		if w.Text != "" {
			d.detail(indent, "text", fmt.Sprintf("%q", w.Text))
		}
		d.detail(indent, "font", fmt.Sprintf("%s %d", w.Font.Name, w.Font.Size))
		if img := w.EnabledDrawData[0].Image; img != "" {
			d.detail(indent, "image", img)
		}
	}
	for _, c := range w.Children() {
		d.window(c, depth+1)
	}
}

func (d *dumper) detail(indent, key, value string) {
	if value == "" || value == wnd.NoCallback {
		return
	}
	fmt.Fprintf(&d.b, "%s    %s\n", indent, detailStyle.Render(key+": "+value))
}
