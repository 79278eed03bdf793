package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapsesWhitespaceRuns(t *testing.T) {
	n := New()
	n.WriteText([]byte("a \t\n  b"))
	assert.Equal(t, "a b", string(n.Bytes()))
}

func TestNonBreakingSpaceCollapses(t *testing.T) {
	n := New()
	n.WriteText([]byte("Hello\u00a0World"))
	assert.Equal(t, "Hello World", string(n.Bytes()))
}

func TestLeadingAndTrailingWhitespaceTrimmed(t *testing.T) {
	n := New()
	n.WriteText([]byte("   padded   "))
	assert.Equal(t, "padded", string(n.Bytes()))
}

func TestFragmentBoundarySpaces(t *testing.T) {
	n := New()
	n.WriteText([]byte("one "))
	n.WriteText([]byte(" two"))
	assert.Equal(t, "one two", string(n.Bytes()))
}

func TestBlockBoundaryBecomesNewline(t *testing.T) {
	n := New()
	n.WriteText([]byte("first"))
	n.BlockBoundary()
	n.WriteText([]byte("second"))
	assert.Equal(t, "first\nsecond", string(n.Bytes()))
}

func TestAdjacentBoundariesCollapse(t *testing.T) {
	n := New()
	n.WriteText([]byte("a"))
	n.BlockBoundary()
	n.BlockBoundary()
	n.BlockBoundary()
	n.WriteText([]byte("b"))
	assert.Equal(t, "a\nb", string(n.Bytes()))
}

func TestBoundaryOverridesPendingSpace(t *testing.T) {
	n := New()
	n.WriteText([]byte("a "))
	n.BlockBoundary()
	n.WriteText([]byte(" b"))
	assert.Equal(t, "a\nb", string(n.Bytes()))
}

func TestNoLeadingOrTrailingSeparator(t *testing.T) {
	n := New()
	n.BlockBoundary()
	n.WriteText([]byte("  only  "))
	n.BlockBoundary()
	assert.Equal(t, "only", string(n.Bytes()))
}

func TestEmptyInput(t *testing.T) {
	n := New()
	assert.Empty(t, n.Bytes())
	n.WriteText([]byte("   \n\t  "))
	n.BlockBoundary()
	assert.Empty(t, n.Bytes())
}

func TestNoDoubleSpacesEver(t *testing.T) {
	n := New()
	n.WriteText([]byte("  x    y\t"))
	n.BlockBoundary()
	n.WriteText([]byte("   z   "))
	out := string(n.Bytes())
	assert.NotContains(t, out, "  ")
	assert.False(t, strings.HasPrefix(out, " "))
	assert.False(t, strings.HasSuffix(out, " "))
}

func TestMultibyteContent(t *testing.T) {
	n := New()
	n.WriteText([]byte("héllo  世界"))
	assert.Equal(t, "héllo 世界", string(n.Bytes()))
}
