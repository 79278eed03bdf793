// Package reader is the input front end of the extraction engine: charset
// detection, conversion to UTF-8, and a cursor that decodes bytes to Unicode
// scalars without ever failing on malformed input.
package reader

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// DetectCharset guesses the character encoding of raw document bytes,
// defaulting to UTF-8 when detection fails.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// Decode converts raw document bytes into valid UTF-8. Input that is already
// valid UTF-8 passes through untouched. Otherwise the detected charset is
// converted; if detection or conversion fails, malformed sequences decode to
// U+FFFD instead. Decode never fails.
func Decode(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	label := DetectCharset(data)
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return Sanitize(data)
	}
	converted, err := io.ReadAll(r)
	if err != nil {
		return Sanitize(data)
	}
	return Sanitize(converted)
}

// Sanitize rewrites data into a valid UTF-8 buffer, replacing each malformed
// sequence with U+FFFD. Already-valid input is returned unchanged without
// allocation.
func Sanitize(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	out := make([]byte, 0, len(data)+utf8.UTFMax)
	cur := NewCursor(data)
	for !cur.AtEnd() {
		r, _ := cur.Advance()
		out = utf8.AppendRune(out, r)
	}
	return out
}

// Cursor steps through a byte buffer as Unicode scalar values. The buffer is
// never assumed to be null-terminated or well-formed: malformed sequences
// decode to U+FFFD and the cursor advances by the shortest valid recovery
// span, so it never stalls. Cursor state is the only allocation.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor { return &Cursor{data: data} }

// AtEnd reports whether the cursor has consumed the whole buffer.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.data) }

// Peek returns the scalar at the cursor and its encoded width without
// advancing. At end of input it returns U+FFFD with width zero.
func (c *Cursor) Peek() (rune, int) {
	if c.AtEnd() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.data[c.pos:])
}

// Advance consumes and returns the scalar at the cursor.
func (c *Cursor) Advance() (rune, int) {
	r, n := c.Peek()
	c.pos += n
	return r, n
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }
