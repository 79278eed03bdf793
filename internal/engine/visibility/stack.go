package visibility

// Stack tracks the currently open elements and the visibility they imply.
// The suppression count is updated on every mutation, so Visible is always
// consistent with the stack contents.
type Stack struct {
	open       []string
	suppressed int
}

// NewStack returns an empty element stack; the document root is visible.
func NewStack() *Stack { return &Stack{} }

// Push records an opened element. Void elements are ignored: they cannot
// hold content, so they never change visibility.
func (s *Stack) Push(name string) {
	if Void(name) {
		return
	}
	s.open = append(s.open, name)
	if Suppressed(name) {
		s.suppressed++
	}
}

// Pop closes the named element with tag-soup recovery: unclosed elements
// above the match are implicitly closed too, and a stray end tag with no
// open counterpart is ignored.
func (s *Stack) Pop(name string) {
	for i := len(s.open) - 1; i >= 0; i-- {
		if s.open[i] != name {
			continue
		}
		for _, closed := range s.open[i:] {
			if Suppressed(closed) {
				s.suppressed--
			}
		}
		s.open = s.open[:i]
		return
	}
}

// Visible reports whether text at the current position belongs in output:
// false while any open element is suppressed.
func (s *Stack) Visible() bool { return s.suppressed == 0 }

// Current returns the innermost open element name, or "" at the root.
func (s *Stack) Current() string {
	if len(s.open) == 0 {
		return ""
	}
	return s.open[len(s.open)-1]
}

// Depth returns the number of open elements.
func (s *Stack) Depth() int { return len(s.open) }
