package wnd

// cursor scans a window description. Tokens it returns are views into src.
type cursor struct {
	src  []byte
	pos  int
	line int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src, line: 1}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.pos]
}

func (c *cursor) skipByte() {
	if c.eof() {
		return
	}
	if c.src[c.pos] == '\n' {
		c.line++
	}
	c.pos++
}

func (c *cursor) skipInsignificant() {
	for !c.eof() {
		switch b := c.src[c.pos]; {
		case b == ' ' || b == '\t' || b == '\r':
			c.pos++
		case b == '\n':
			c.line++
			c.pos++
		case b == '/' && c.pos+1 < len(c.src) && c.src[c.pos+1] == '/':
			for !c.eof() && c.src[c.pos] != '\n' {
				c.pos++
			}
		default:
			return
		}
	}
}

func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '=', ';', ',', ':':
		return true
	default:
		return false
	}
}

func (c *cursor) readToken() []byte {
	c.skipInsignificant()
	start := c.pos
	for !c.eof() && !isDelimiter(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// readQuoted returns the bytes between a pair of double quotes. Escapes are
// not interpreted. Without an opening quote it reads a plain token.
func (c *cursor) readQuoted() []byte {
	c.skipInsignificant()
	if c.peek() != '"' {
		return c.readToken()
	}
	c.pos++
	start := c.pos
	for !c.eof() && c.src[c.pos] != '"' {
		if c.src[c.pos] == '\n' {
			c.line++
		}
		c.pos++
	}
	s := c.src[start:c.pos]
	if !c.eof() {
		c.pos++
	}
	return s
}

// readInt parses an optional '-' and a run of digits. Missing digits read
// as 0; overflow wraps like the int32 it is stored in.
func (c *cursor) readInt() int32 {
	c.skipInsignificant()
	neg := false
	if c.peek() == '-' {
		neg = true
		c.pos++
	}
	var n int32
	for !c.eof() {
		b := c.src[c.pos]
		if b < '0' || b > '9' {
			break
		}
		n = n*10 + int32(b-'0')
		c.pos++
	}
	if neg {
		return -n
	}
	return n
}

func (c *cursor) expect(lit string) ([]byte, bool) {
	c.skipInsignificant()
	end := c.pos + len(lit)
	if end > len(c.src) || string(c.src[c.pos:end]) != lit {
		return nil, false
	}
	c.pos = end
	return c.src[end-len(lit) : end], true
}

// skipPast consumes input up to and including the next b that is not inside
// a quoted string or a // comment. It returns false if input ran out first.
func (c *cursor) skipPast(b byte) bool {
	quoted := false
	for !c.eof() {
		ch := c.src[c.pos]
		if !quoted && ch == '/' && c.pos+1 < len(c.src) && c.src[c.pos+1] == '/' {
			for !c.eof() && c.src[c.pos] != '\n' {
				c.pos++
			}
			continue
		}
		c.skipByte()
		switch {
		case ch == '"':
			quoted = !quoted
		case ch == b && !quoted:
			return true
		}
	}
	return false
}
