// Package textnorm folds the stream of decoded visible text fragments into a
// single readable sequence, applying the whitespace-collapse rules HTML
// rendering uses: runs of whitespace become one space, block-element
// boundaries become one line break, and the output carries no leading or
// trailing separator.
package textnorm

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Normalizer accumulates normalized output for one extraction pass. Writes
// are append-only and separators stay pending until the next visible scalar
// arrives, so separators can never lead, trail, or double up.
type Normalizer struct {
	buf          bytes.Buffer
	pendingSpace bool
	pendingBreak bool
	wrote        bool
}

// New returns an empty normalizer.
func New() *Normalizer { return &Normalizer{} }

// WriteText feeds one decoded visible fragment in document order. Any run of
// Unicode whitespace, including non-breaking spaces, collapses into a single
// pending space.
func (n *Normalizer) WriteText(frag []byte) {
	for i := 0; i < len(frag); {
		r, w := utf8.DecodeRune(frag[i:])
		i += w
		if unicode.IsSpace(r) {
			if n.wrote {
				n.pendingSpace = true
			}
			continue
		}
		n.flushSeparator()
		n.buf.WriteRune(r)
		n.wrote = true
	}
}

// BlockBoundary records a block-element edge (open or close). Boundaries
// before the first visible scalar are dropped, adjacent boundaries collapse
// into one separator, and a boundary overrides a pending space.
func (n *Normalizer) BlockBoundary() {
	if n.wrote {
		n.pendingBreak = true
		n.pendingSpace = false
	}
}

func (n *Normalizer) flushSeparator() {
	switch {
	case n.pendingBreak:
		n.buf.WriteByte('\n')
	case n.pendingSpace:
		n.buf.WriteByte(' ')
	}
	n.pendingBreak, n.pendingSpace = false, false
}

// Bytes returns the normalized output. Pending separators never flush, so
// the result needs no trim pass; the buffer is valid UTF-8 whenever the
// input fragments were.
func (n *Normalizer) Bytes() []byte { return n.buf.Bytes() }

// Len returns the current output length in bytes.
func (n *Normalizer) Len() int { return n.buf.Len() }
