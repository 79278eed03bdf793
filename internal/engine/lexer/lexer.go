// Package lexer turns a byte stream into a forward-only sequence of markup
// token events with browser-grade tag-soup recovery.
//
// The heavy lifting is the WHATWG tokenizer from golang.org/x/net/html: a '<'
// not followed by a tag name is plain text, raw-text elements (script, style,
// title) deliver their content as single text runs, and tag names arrive
// ASCII case-folded. One recovery rule is layered on top: the tokenizer
// abandons a tag whose attribute value has an unmatched quote, swallowing
// everything to end of input, so the lexer re-scans that abandoned span,
// ends the value at the next '>', and resumes after it. A partial tag with
// no '>' at all stays dropped.
package lexer

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Kind discriminates token events.
type Kind int

const (
	EOF Kind = iota
	StartTag
	EndTag
	SelfClosing
	Text
	Comment
	Doctype
)

// Token is one event from the markup stream. Raw aliases the lexer's internal
// buffer and is only valid until the next call to Next; consumers must use or
// copy it immediately.
type Token struct {
	Kind Kind
	// Name is the lower-cased tag name for StartTag, EndTag, and SelfClosing.
	Name string
	// Raw holds the undecoded character data of a Text run. Character
	// references inside it are unresolved.
	Raw []byte
}

// Lexer produces the token stream for one extraction pass. It is forward-only
// and not restartable; build a new Lexer per input.
type Lexer struct {
	tz *html.Tokenizer
}

// New returns a lexer over data. The input must already be valid UTF-8 (the
// reader package guarantees this).
func New(data []byte) *Lexer {
	return &Lexer{tz: html.NewTokenizer(bytes.NewReader(data))}
}

// Next returns the next token. At end of input it returns an EOF token and
// keeps returning it. Malformed markup is recovered, never reported.
func (l *Lexer) Next() Token {
	switch l.tz.Next() {
	case html.StartTagToken:
		name, _ := l.tz.TagName()
		return Token{Kind: StartTag, Name: string(name)}
	case html.EndTagToken:
		name, _ := l.tz.TagName()
		return Token{Kind: EndTag, Name: string(name)}
	case html.SelfClosingTagToken:
		name, _ := l.tz.TagName()
		return Token{Kind: SelfClosing, Name: string(name)}
	case html.TextToken:
		return Token{Kind: Text, Raw: l.tz.Raw()}
	case html.CommentToken:
		return Token{Kind: Comment}
	case html.DoctypeToken:
		return Token{Kind: Doctype}
	default:
		// ErrorToken: end of input, possibly reached inside a tag.
		if tok, ok := l.recoverTag(); ok {
			return tok
		}
		return Token{Kind: EOF}
	}
}

// recoverTag salvages a tag the tokenizer abandoned at end of input. An
// attribute value with an unmatched quote consumes every remaining byte, so
// the abandoned raw span holds the partial tag plus everything after it. The
// recovery rule ends the attribute value at the next '>': the tag is emitted
// from its parsed name and tokenizing resumes on the bytes past that '>'. A
// partial tag with no '>' left stays dropped, per the close-at-EOF rule.
func (l *Lexer) recoverTag() (Token, bool) {
	raw := l.tz.Raw()
	if len(raw) < 2 || raw[0] != '<' {
		return Token{}, false
	}
	gt := findTagEnd(raw)
	if gt < 0 {
		return Token{}, false
	}
	name, end := tagName(raw)
	if name == "" {
		return Token{}, false
	}

	rest := append([]byte(nil), raw[gt+1:]...)
	l.tz = html.NewTokenizer(bytes.NewReader(rest))

	if end {
		return Token{Kind: EndTag, Name: name}, true
	}
	return Token{Kind: StartTag, Name: name}, true
}

// findTagEnd returns the index of the '>' that terminates the partial tag.
// Matched quote pairs are skipped whole, so a '>' inside a completed value
// never ends the tag; the unmatched quote's value ends at the next '>' after
// it. Returns -1 when the tag truly runs to end of input.
func findTagEnd(raw []byte) int {
	for i := 1; i < len(raw); i++ {
		switch raw[i] {
		case '>':
			return i
		case '"', '\'':
			match := bytes.IndexByte(raw[i+1:], raw[i])
			if match >= 0 {
				i += 1 + match
				continue
			}
			gt := bytes.IndexByte(raw[i+1:], '>')
			if gt < 0 {
				return -1
			}
			return i + 1 + gt
		}
	}
	return -1
}

// tagName parses the lower-cased tag name from a raw partial tag, reporting
// whether it is an end tag. Returns "" when no tag name follows the '<'.
func tagName(raw []byte) (string, bool) {
	i := 1
	end := false
	if i < len(raw) && raw[i] == '/' {
		end = true
		i++
	}
	start := i
	for i < len(raw) {
		c := raw[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || i > start && '0' <= c && c <= '9' {
			i++
			continue
		}
		break
	}
	if i == start {
		return "", false
	}
	return strings.ToLower(string(raw[start:i])), end
}
