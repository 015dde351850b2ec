package token

// Cursor walks a fully buffered document one byte at a time.  The current
// byte is 0 once the end of the document is reached.
//
// Marks may be pushed and later popped, optionally rewinding the cursor to
// the marked offset.
type Cursor struct {
	d      []byte
	i      int
	marks  []int
	posDoc *PosDoc
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{
		d:      d,
		posDoc: newPosDoc(d),
	}
}

// Curr returns the current byte.
func (c *Cursor) Curr() byte {
	if c.i >= len(c.d) {
		return 0
	}
	return c.d[c.i]
}

// Next advances one byte and returns the new current byte.
func (c *Cursor) Next() byte {
	c.Advance()
	return c.Curr()
}

// Peek returns the byte after the current one without moving.
func (c *Cursor) Peek() byte {
	if c.i+1 >= len(c.d) {
		return 0
	}
	return c.d[c.i+1]
}

func (c *Cursor) Advance() {
	if c.i < len(c.d) {
		c.i++
	}
}

func (c *Cursor) Offset() int {
	return c.i
}

func (c *Cursor) Pos() *Pos {
	return c.posDoc.Pos(c.i)
}

// Slice returns the text between two offsets.
func (c *Cursor) Slice(from, to int) string {
	from = min(max(from, 0), len(c.d))
	to = min(max(to, from), len(c.d))
	return string(c.d[from:to])
}

func (c *Cursor) PushMark() {
	c.marks = append(c.marks, c.i)
}

// PopMark drops the most recent mark.  If rewind is set the cursor returns
// to the marked offset.
func (c *Cursor) PopMark(rewind bool) {
	n := len(c.marks)
	if n == 0 {
		return
	}
	if rewind {
		c.i = c.marks[n-1]
	}
	c.marks = c.marks[:n-1]
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (c *Cursor) SkipWhitespace() byte {
	ch := c.Curr()
	for isSpace(ch) {
		ch = c.Next()
	}
	return ch
}

// SkipWhitespaceAndHashComments skips whitespace and '#' comments.
func (c *Cursor) SkipWhitespaceAndHashComments() byte {
	for {
		ch := c.SkipWhitespace()
		if ch != '#' {
			return ch
		}
		c.skipLine()
	}
}

// SkipWhitespaceAndComments skips whitespace together with "//" and
// "/* */" comments.  A lone '/' is returned as an ordinary character.  An
// unterminated block comment runs to the end of the document.
func (c *Cursor) SkipWhitespaceAndComments() byte {
	for {
		ch := c.SkipWhitespace()
		if ch != '/' {
			return ch
		}
		switch c.Peek() {
		case '/':
			c.skipLine()
		case '*':
			c.i += 2
			c.skipBlock()
		default:
			return ch
		}
	}
}

func (c *Cursor) skipLine() {
	for ch := c.Curr(); ch != 0 && ch != '\n'; ch = c.Next() {
	}
}

func (c *Cursor) skipBlock() {
	for ch := c.Curr(); ch != 0; ch = c.Next() {
		if ch == '*' && c.Peek() == '/' {
			c.i += 2
			return
		}
	}
}
