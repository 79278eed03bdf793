// Package engine is the HTML-to-text extraction pipeline:
//
//	raw bytes -> reader -> lexer -> {visibility, entity} -> textnorm -> Document
//
// The reader converts arbitrary input to valid UTF-8, the lexer produces
// token events with tag-soup recovery, the visibility stack decides which
// text runs are human-visible, the entity decoder resolves character
// references, and the normalizer collapses whitespace and inserts block
// separators.
//
// Extraction is pure and synchronous: no I/O, no cross-call state, no
// failure mode. Malformed markup and malformed encodings are both recovered
// into best-effort output, because a browser-grade extractor degrades
// gracefully on the open web instead of rejecting it.
package engine
