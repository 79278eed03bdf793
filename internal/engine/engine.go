package engine

import (
	"strings"

	"github.com/vulpes-browser/vulpes/internal/engine/entity"
	"github.com/vulpes-browser/vulpes/internal/engine/lexer"
	"github.com/vulpes-browser/vulpes/internal/engine/reader"
	"github.com/vulpes-browser/vulpes/internal/engine/textnorm"
	"github.com/vulpes-browser/vulpes/internal/engine/visibility"
)

// Document is the outcome of one extraction pass.
type Document struct {
	// Text is the normalized human-visible text, UTF-8, in document order.
	Text []byte
	// Title is the whitespace-collapsed content of the first title element,
	// or "" when the document has none.
	Title string
}

// Extract runs the full pipeline over raw document bytes. The input is never
// retained past the call and never mutated. Extraction has no failure mode:
// tag soup, bad references, and broken encodings all recover into
// best-effort output.
func Extract(data []byte) Document {
	if len(data) == 0 {
		return Document{Text: []byte{}}
	}

	lx := lexer.New(reader.Decode(data))
	stack := visibility.NewStack()
	norm := textnorm.New()

	var title []byte
	titleSeen := false
	titleDone := false

	for {
		tok := lx.Next()
		switch tok.Kind {
		case lexer.EOF:
			return Document{Text: norm.Bytes(), Title: collapseTitle(title)}

		case lexer.StartTag:
			stack.Push(tok.Name)
			if tok.Name == "title" {
				titleSeen = true
			}
			if visibility.Block(tok.Name) {
				norm.BlockBoundary()
			}

		case lexer.EndTag:
			// The first title element wins, even an empty one. A stray
			// </title> with no open counterpart decides nothing.
			if tok.Name == "title" && titleSeen {
				titleDone = true
			}
			stack.Pop(tok.Name)
			if visibility.Block(tok.Name) {
				norm.BlockBoundary()
			}

		case lexer.SelfClosing:
			// Void syntax: opens and closes in place, no stack entry.
			if visibility.Block(tok.Name) {
				norm.BlockBoundary()
			}

		case lexer.Text:
			if stack.Visible() {
				norm.WriteText(entity.Decode(tok.Raw))
			} else if !titleDone && stack.Current() == "title" {
				title = append(title, entity.Decode(tok.Raw)...)
			}
		}
	}
}

func collapseTitle(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	return strings.Join(strings.Fields(string(raw)), " ")
}
