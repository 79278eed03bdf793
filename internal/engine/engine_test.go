package engine

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func extractString(t *testing.T, input string) string {
	t.Helper()
	return string(Extract([]byte(input)).Text)
}

func TestCanonicalDocument(t *testing.T) {
	input := `<html><head><title>X</title></head><body><p>Hello&nbsp;World</p><script>evil()</script></body></html>`
	doc := Extract([]byte(input))
	assert.Equal(t, "Hello World", string(doc.Text))
	assert.Equal(t, "X", doc.Title)
}

func TestEmptyInput(t *testing.T) {
	doc := Extract(nil)
	assert.NotNil(t, doc.Text)
	assert.Empty(t, doc.Text)
	assert.Empty(t, doc.Title)
}

func TestSuppressedElementsContributeNothing(t *testing.T) {
	input := `<head><style>p{color:red}</style></head>` +
		`<p>keep</p>` +
		`<script>var hidden = "secret";</script>` +
		`<noscript>fallback</noscript>` +
		`<template><p>stamped</p></template>`
	out := extractString(t, input)
	assert.Equal(t, "keep", out)
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "fallback")
	assert.NotContains(t, out, "stamped")
	assert.NotContains(t, out, "color")
}

func TestNoTagDelimitersInOutput(t *testing.T) {
	inputs := []string{
		`<div><p>a</p><span>b</span></div>`,
		`<ul><li>one</li><li>two</li></ul>`,
		`<table><tr><td>cell</td></tr></table>`,
	}
	for _, in := range inputs {
		out := extractString(t, in)
		assert.NotContains(t, out, "<", in)
		assert.NotContains(t, out, ">", in)
	}
}

func TestIdempotence(t *testing.T) {
	input := []byte(`<div> messy   <b>markup</b><p>with &amp; entities</div>`)
	first := Extract(input)
	second := Extract(input)
	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.Title, second.Title)
}

func TestWhitespaceLaw(t *testing.T) {
	input := `  <div>  a   lot
	of   </div>   <p>  spacing  </p>  `
	out := extractString(t, input)
	assert.NotContains(t, out, "  ")
	assert.False(t, strings.HasPrefix(out, " "))
	assert.False(t, strings.HasSuffix(out, " "))
	assert.Equal(t, "a lot of\nspacing", out)
}

func TestEntityRoundTrip(t *testing.T) {
	// Encoding the special characters of a visible string as named
	// references must extract back to the original string.
	original := `5 < 6 & 7 > 4 "quoted"`
	encoded := `<p>5 &lt; 6 &amp; 7 &gt; 4 &quot;quoted&quot;</p>`
	assert.Equal(t, original, extractString(t, encoded))
}

func TestUnknownEntityPreserved(t *testing.T) {
	out := extractString(t, `<p>a &foo; b</p>`)
	assert.Equal(t, "a &foo; b", out)
}

func TestUnclosedTagsYieldText(t *testing.T) {
	assert.Equal(t, "text", extractString(t, `<div>text`))
	assert.Equal(t, "one\ntwo", extractString(t, `<p>one<p>two`))
	assert.Equal(t, "bold and beyond", extractString(t, `<b>bold and beyond`))
}

func TestBlockSeparators(t *testing.T) {
	assert.Equal(t, "a\nb", extractString(t, `<div>a</div><div>b</div>`))
	assert.Equal(t, "a\nb", extractString(t, `a<br>b`))
	assert.Equal(t, "a\nb", extractString(t, `a<br/>b`))
	assert.Equal(t, "inline and flowing", extractString(t, `in<span>line</span> <em>and</em> flowing`))
}

func TestNoSeparatorRuns(t *testing.T) {
	input := `<div><p></p></div><div></div><p>x</p><div><br><br></div><p>y</p>`
	out := extractString(t, input)
	assert.Equal(t, "x\ny", out)
}

func TestCommentsAndDoctypeDiscarded(t *testing.T) {
	input := `<!DOCTYPE html><!-- nothing to see -->visible<!-- more -->`
	assert.Equal(t, "visible", extractString(t, input))
}

func TestMismatchedTagsRecovered(t *testing.T) {
	// The stray </i> has no open counterpart; the unclosed <b> is closed by
	// its ancestor's end tag.
	assert.Equal(t, "a b c", extractString(t, `<div>a <b>b</i> c</div>`))
}

func TestUnmatchedAttributeQuoteKeepsTrailingText(t *testing.T) {
	// The bad quote's value ends at the next '>'; everything after the tag
	// still extracts. No whitespace separates "link" and "after" in the
	// input, so none appears in the output.
	assert.Equal(t, "linkafter", extractString(t, `<a href="x>link</a>after`))
	assert.Equal(t, "link after", extractString(t, `<a href="x>link</a> after`))
	assert.Equal(t, "intro\nlink after", extractString(t, `<p>intro</p><a href="x>link</a> after`))
}

func TestMalformedBytesRecovered(t *testing.T) {
	input := append([]byte(`<p>ok `), 0xFF, 0xFE)
	doc := Extract(input)
	assert.True(t, utf8.Valid(doc.Text))
	assert.Contains(t, string(doc.Text), "ok")
}

func TestTitleCapture(t *testing.T) {
	doc := Extract([]byte(`<head><title>  My&nbsp;Page  </title></head><body>text</body>`))
	assert.Equal(t, "My Page", doc.Title)
	assert.Equal(t, "text", string(doc.Text))

	// Only the first title element counts, even an empty one.
	doc = Extract([]byte(`<title>first</title><title>second</title>`))
	assert.Equal(t, "first", doc.Title)

	doc = Extract([]byte(`<title></title><title>second</title>`))
	assert.Equal(t, "", doc.Title)

	// A stray end tag decides nothing.
	doc = Extract([]byte(`</title><title>real</title>`))
	assert.Equal(t, "real", doc.Title)
}

func TestTableCells(t *testing.T) {
	input := `<table><tr><th>Name</th><th>Age</th></tr><tr><td>John</td><td>30</td></tr></table>`
	assert.Equal(t, "Name\nAge\nJohn\n30", extractString(t, input))
}

func TestDeeplySuppressedNesting(t *testing.T) {
	input := `<noscript><div><p>never</p></div></noscript>after`
	out := extractString(t, input)
	assert.Equal(t, "after", out)
}
