// Package sanitize strips dangerous markup from HTML while keeping the
// benign structure intact. It fronts bluemonday so callers never touch
// policy construction.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Policy cleans untrusted HTML.
type Policy struct {
	inner *bluemonday.Policy
}

// NewUGC returns a policy suited to user-generated content: common
// formatting elements survive, scripts and event handlers do not.
func NewUGC() *Policy {
	return &Policy{inner: bluemonday.UGCPolicy()}
}

// Clean returns a sanitized copy of html.
func (p *Policy) Clean(html []byte) []byte {
	return p.inner.SanitizeBytes(html)
}
