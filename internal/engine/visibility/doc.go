// Package visibility tracks the stack of currently open elements and the
// element classifications that drive extraction: suppressed elements whose
// text never reaches output, block-level elements that force a separator at
// their boundaries, and void elements that never enter the stack.
//
// The classifications are static lookup tables keyed by the lexer's
// case-folded element names, so the suppression and separator rules stay
// auditable in one place.
package visibility
