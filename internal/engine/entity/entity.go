// Package entity resolves HTML character references in raw text runs.
//
// Resolution follows the HTML5 reference rules, carried by the WHATWG tables
// in golang.org/x/net/html: named references resolve against the standard
// table, numeric references outside the Unicode scalar range (and surrogate
// code points) decode to U+FFFD, references missing their semicolon resolve
// by the legacy longest-prefix match, and a name with no table entry stays in
// the output literally, ampersand included. An unknown reference is data,
// never something to drop.
package entity

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Decode resolves character references in a raw text run. Runs without an
// ampersand are returned unchanged without allocation; the returned slice
// may alias the input either way, so callers consume it before the next
// lexer step.
func Decode(raw []byte) []byte {
	if !bytes.ContainsRune(raw, '&') {
		return raw
	}
	return []byte(html.UnescapeString(string(raw)))
}

// DecodeString is Decode for string fragments.
func DecodeString(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	return html.UnescapeString(s)
}
