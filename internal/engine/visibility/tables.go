package visibility

// suppressed elements contribute no text to output regardless of nesting
// depth.
var suppressed = map[string]bool{
	"script":   true,
	"style":    true,
	"head":     true,
	"title":    true,
	"noscript": true,
	"template": true,
}

// block elements force a line-break separator at their open and close
// boundaries. Membership only affects separator placement, never visibility.
var block = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "caption": true, "dd": true, "details": true, "div": true,
	"dl": true, "dt": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "summary": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// void elements cannot hold content, need no end tag, and never enter the
// open-element stack.
var void = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Suppressed reports whether text inside the named element is hidden.
func Suppressed(name string) bool { return suppressed[name] }

// Block reports whether the named element is a block-level boundary.
func Block(name string) bool { return block[name] }

// Void reports whether the named element is a void element.
func Void(name string) bool { return void[name] }
