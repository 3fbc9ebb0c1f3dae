package wnd

import "bytes"

// field decodes one `KEY = value;` entry of a WINDOW block into w.
func (p *parser) field(w *Window, key string) error {
	switch key {
	case "WINDOWTYPE":
		p.c.expect("=")
		w.Type = p.windowType()
		p.c.expect(";")
	case "SCREENRECT":
		p.c.expect("=")
		rect, res, _, err := p.screenRect()
		if err != nil {
			return err
		}
		w.Rect = rect
		w.CreationResolution = res
	case "NAME":
		p.c.expect("=")
		w.Name = string(p.c.readQuoted())
		p.c.expect(";")
	case "STATUS":
		p.c.expect("=")
		s, err := p.status()
		if err != nil {
			return err
		}
		w.Status = s
	case "SYSTEMCALLBACK":
		w.Callbacks.System = p.callback()
	case "INPUTCALLBACK":
		w.Callbacks.Input = p.callback()
	case "TOOLTIPCALLBACK":
		w.Callbacks.Tooltip = p.callback()
	case "DRAWCALLBACK":
		w.Callbacks.Draw = p.callback()
	case "FONT":
		p.c.expect("=")
		font, _, err := p.font(w.Font)
		if err != nil {
			return err
		}
		w.Font = font
	case "TEXT":
		p.c.expect("=")
		w.Text = string(p.c.readQuoted())
		p.c.expect(";")
	case "TOOLTIPTEXT":
		p.c.expect("=")
		w.TooltipText = string(p.c.readQuoted())
		p.c.expect(";")
	case "TOOLTIPDELAY":
		p.c.expect("=")
		w.TooltipDelay = p.c.readInt()
		p.c.expect(";")
	case "TEXTCOLOR":
		p.c.expect("=")
		tc, _, err := p.textColors(w.TextColor)
		if err != nil {
			return err
		}
		w.TextColor = tc
	case "ENABLEDDRAWDATA":
		return p.drawData(key, &w.EnabledDrawData)
	case "DISABLEDDRAWDATA":
		return p.drawData(key, &w.DisabledDrawData)
	case "HILITEDRAWDATA":
		return p.drawData(key, &w.HiliteDrawData)
	case "STYLE", "HEADERTEMPLATE":
		p.c.expect("=")
		start := p.c.line
		if !p.c.skipPast(';') {
			return p.eofError(key, start)
		}
	default:
		return p.skipValue("WINDOW", key, windowKeys)
	}
	return nil
}

func (p *parser) callback() string {
	p.c.expect("=")
	v := string(p.c.readQuoted())
	p.c.expect(";")
	if v == "" {
		return NoCallback
	}
	return v
}

func (p *parser) windowType() Type {
	lit := string(p.c.readToken())
	t, ok := ParseType(lit)
	if !ok {
		p.unknown("window type", lit, windowTypeNames())
	}
	return t
}

// labels runs fn for every `LABEL:` inside a field value until the closing
// ';'. fn reports whether it knew the label and whether the field ends after
// it. The returned bool is false if any label was unknown.
func (p *parser) labels(field string, fn func(label string) (known, stop bool)) (bool, error) {
	start := p.c.line
	recognized := true
	for {
		if _, ok := p.c.expect(";"); ok {
			return recognized, nil
		}
		if _, ok := p.c.expect(","); ok {
			continue
		}
		tok := p.c.readToken()
		if len(tok) == 0 {
			if p.c.eof() {
				return false, p.eofError(field, start)
			}
			p.c.skipByte()
			continue
		}
		p.c.expect(":")
		known, stop := fn(string(tok))
		if !known {
			recognized = false
			p.unknown(field+" label", string(tok), nil)
		}
		if stop {
			p.c.expect(";")
			return recognized, nil
		}
	}
}

// screenRect decodes UPPERLEFT, BOTTOMRIGHT and CREATIONRESOLUTION.
// BOTTOMRIGHT is relative to whatever top-left has been read so far.
func (p *parser) screenRect() (Rect, Size, bool, error) {
	var r Rect
	var res Size
	ok, err := p.labels("SCREENRECT", func(label string) (bool, bool) {
		switch label {
		case "UPPERLEFT":
			r.X = p.c.readInt()
			r.Y = p.c.readInt()
		case "BOTTOMRIGHT":
			x2 := p.c.readInt()
			y2 := p.c.readInt()
			r.Width = x2 - r.X
			r.Height = y2 - r.Y
		case "CREATIONRESOLUTION":
			res.W = p.c.readInt()
			res.H = p.c.readInt()
			return true, true
		default:
			return false, false
		}
		return true, false
	})
	return r, res, ok, err
}

// status accumulates flags up to ';'. '+' separates flags whether or not
// it is surrounded by spaces.
func (p *parser) status() (Status, error) {
	var s Status
	start := p.c.line
	for {
		if _, ok := p.c.expect(";"); ok {
			return s, nil
		}
		tok := p.c.readToken()
		if len(tok) == 0 {
			if p.c.eof() {
				return s, p.eofError("STATUS", start)
			}
			p.c.skipByte()
			continue
		}
		for _, part := range bytes.Split(tok, []byte{'+'}) {
			if len(part) == 0 {
				continue
			}
			if !s.set(string(part)) {
				p.unknown("status flag", string(part), nil)
			}
		}
	}
}

func (p *parser) font(def Font) (Font, bool, error) {
	f := def
	ok, err := p.labels("FONT", func(label string) (bool, bool) {
		switch label {
		case "NAME":
			f.Name = string(p.c.readQuoted())
		case "SIZE":
			f.Size = p.c.readInt()
		case "BOLD":
			f.Bold = p.c.readInt() != 0
		default:
			return false, false
		}
		return true, false
	})
	return f, ok, err
}

func (p *parser) color() Color {
	return Color{
		R: clampByte(p.c.readInt()),
		G: clampByte(p.c.readInt()),
		B: clampByte(p.c.readInt()),
		A: clampByte(p.c.readInt()),
	}
}

func clampByte(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (p *parser) textColors(def TextColors) (TextColors, bool, error) {
	tc := def
	ok, err := p.labels("TEXTCOLOR", func(label string) (bool, bool) {
		switch label {
		case "ENABLED":
			tc.Enabled.Color = p.color()
		case "ENABLEDBORDER":
			tc.Enabled.BorderColor = p.color()
		case "DISABLED":
			tc.Disabled.Color = p.color()
		case "DISABLEDBORDER":
			tc.Disabled.BorderColor = p.color()
		case "HILITE":
			tc.Hilite.Color = p.color()
		case "HILITEBORDER":
			tc.Hilite.BorderColor = p.color()
		default:
			return false, false
		}
		return true, false
	})
	return tc, ok, err
}

// drawData decodes up to DrawLayerCount `IMAGE:, COLOR:, BORDERCOLOR:`
// groups. Each IMAGE label starts a new layer; layers past the last slot
// are read and dropped.
func (p *parser) drawData(key string, layers *DrawLayers) error {
	p.c.expect("=")
	idx := -1
	layer := func() *DrawData {
		if idx < 0 {
			idx = 0
		}
		if idx >= DrawLayerCount {
			return &DrawData{}
		}
		return &layers[idx]
	}
	_, err := p.labels(key, func(label string) (bool, bool) {
		switch label {
		case "IMAGE":
			idx++
			layer().Image = string(p.c.readQuoted())
		case "COLOR":
			layer().Color = p.color()
		case "BORDERCOLOR":
			layer().BorderColor = p.color()
		default:
			return false, false
		}
		return true, false
	})
	if idx >= DrawLayerCount {
		p.log.Debug("draw layers dropped", "source", p.name, "line", p.c.line,
			"key", key, "layers", idx+1, "max", DrawLayerCount)
	}
	return err
}
