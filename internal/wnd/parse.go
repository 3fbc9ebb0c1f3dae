package wnd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

var (
	ErrFileNotFound  = errors.New("window file not found")
	ErrIO            = errors.New("window file unreadable")
	ErrUnexpectedEOF = errors.New("unexpected end of window description")
)

type Option func(*parser)

// WithLogger routes parser diagnostics (unknown keys, dropped children) to
// log. Diagnostics are discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(p *parser) {
		if log != nil {
			p.log = log
		}
	}
}

// WithSourceName labels log lines with name, usually the file path.
func WithSourceName(name string) Option {
	return func(p *parser) {
		p.name = name
	}
}

type parser struct {
	c    *cursor
	log  *slog.Logger
	name string
}

// ParseFile reads and parses the window description at path.
func ParseFile(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(data, append([]Option{WithSourceName(path)}, opts...)...)
}

// Parse builds a File from src. Malformed fields degrade to defaults; only
// input that ends inside a block is an error.
func Parse(src []byte, opts ...Option) (*File, error) {
	p := &parser{
		c:    newCursor(src),
		log:  slog.New(slog.DiscardHandler),
		name: "<input>",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.parseFile()
}

func (p *parser) parseFile() (*File, error) {
	f := &File{Layout: defaultLayout()}
	for {
		tok := p.c.readToken()
		if len(tok) == 0 {
			if p.c.eof() {
				return f, nil
			}
			p.c.skipByte()
			continue
		}
		switch key := string(tok); key {
		case "FILE_VERSION":
			v, ok := p.version()
			if !ok {
				p.log.Debug("malformed FILE_VERSION", "source", p.name, "line", p.c.line, "version", v)
			}
			f.Version = v
		case "STARTLAYOUTBLOCK":
			layout, err := p.layout()
			if err != nil {
				f.Release()
				return nil, err
			}
			f.Layout = layout
		case "WINDOW":
			w, err := p.window(p.c.line)
			if err != nil {
				f.Release()
				return nil, err
			}
			if f.Root != nil {
				// Last top-level window wins.
				p.log.Debug("replacing root window", "source", p.name, "line", w.Line,
					"previous", f.Root.Name, "next", w.Name)
				f.Root.Release()
			}
			f.Root = w
		default:
			p.unknown("top-level token", key, topLevelKeys)
		}
	}
}

// version reads `= n;`. The number is kept even when a delimiter is
// missing; ok reports whether both were present.
func (p *parser) version() (int32, bool) {
	_, ok := p.c.expect("=")
	v := p.c.readInt()
	_, term := p.c.expect(";")
	return v, ok && term
}

func (p *parser) layout() (LayoutBlock, error) {
	start := p.c.line
	l := defaultLayout()
	for {
		tok := p.c.readToken()
		if len(tok) == 0 {
			if p.c.eof() {
				return l, p.eofError("STARTLAYOUTBLOCK", start)
			}
			p.c.skipByte()
			continue
		}
		switch key := string(tok); key {
		case "ENDLAYOUTBLOCK":
			return l, nil
		case "LAYOUTINIT":
			l.Init = p.callback()
		case "LAYOUTUPDATE":
			l.Update = p.callback()
		case "LAYOUTSHUTDOWN":
			l.Shutdown = p.callback()
		default:
			if err := p.skipValue("STARTLAYOUTBLOCK", key, layoutKeys); err != nil {
				return l, err
			}
		}
	}
}

func (p *parser) window(line int) (*Window, error) {
	w := NewWindow()
	w.Line = line
	for {
		tok := p.c.readToken()
		if len(tok) == 0 {
			if p.c.eof() {
				w.Release()
				return nil, p.eofError("WINDOW", line)
			}
			p.c.skipByte()
			continue
		}
		key := string(tok)
		switch key {
		case "END":
			return w, nil
		case "WINDOW":
			child, err := p.window(p.c.line)
			if err != nil {
				w.Release()
				return nil, err
			}
			if !w.AddChild(child) {
				p.log.Debug("child window dropped, capacity reached", "source", p.name,
					"line", child.Line, "parent", w.Name, "child", child.Name, "max", MaxChildren)
				child.Release()
			}
		default:
			if err := p.field(w, key); err != nil {
				w.Release()
				return nil, err
			}
		}
	}
}

// unknown logs an unrecognised key together with the nearest known one.
func (p *parser) unknown(what, key string, known []string) {
	attrs := []any{"source", p.name, "line", p.c.line, "key", key}
	if s := suggest(key, known); s != "" {
		attrs = append(attrs, "suggest", s)
	}
	p.log.Debug("ignoring "+what, attrs...)
}

// skipValue discards `= ... ;` after an unrecognised key. A key with no
// '=' after it is treated as a stray token.
func (p *parser) skipValue(block, key string, known []string) error {
	p.unknown("key in "+block, key, known)
	if _, ok := p.c.expect("="); !ok {
		return nil
	}
	start := p.c.line
	if !p.c.skipPast(';') {
		return p.eofError(key, start)
	}
	return nil
}

func (p *parser) eofError(block string, line int) error {
	return fmt.Errorf("%s:%d: %s: %w", p.name, line, block, ErrUnexpectedEOF)
}
