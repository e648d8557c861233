package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is an immutable parsed HTML tree.
// It is created once by the fetch layer and read by the checks;
// nothing mutates the tree after parsing.
//
// Design decision: We use golang.org/x/net/html rather than regex or a
// hand-written tokenizer because:
//  1. It correctly handles malformed HTML common on the web
//  2. It applies the HTML5 tree-construction rules (implied html/head/body)
//  3. Standard library extension, well-maintained
type Document struct {
	root *html.Node
}

// Parse reads HTML from r and returns the parsed document.
// The parser is tolerant; it only fails when the underlying reader fails.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Element is a single element node in the document tree.
// The zero value is not usable; Elements are obtained from Document
// lookups or from Parent traversal.
type Element struct {
	node *html.Node
}

// Find returns all elements whose tag name matches any of the given
// names, in document order. Multiple tag names are interleaved in the
// order they appear in the document, not grouped by name.
func (d *Document) Find(tags ...string) []*Element {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}

	var elements []*Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && want[n.Data] {
			elements = append(elements, &Element{node: n})
		}
		return true
	})
	return elements
}

// First returns the first element with the given tag name in document
// order, or nil if the document contains no such element.
func (d *Document) First(tag string) *Element {
	var found *Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			found = &Element{node: n}
			return false
		}
		return true
	})
	return found
}

// walk performs a depth-first traversal of the tree rooted at n.
// The visit function returns false to stop the traversal early.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// Tag returns the element's tag name. The parser lower-cases tag names,
// so comparisons against literals like "input" are safe.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute and whether the
// attribute is present. A present-but-empty attribute (alt="") returns
// ("", true), which the image check distinguishes from an absent one.
func (e *Element) Attr(key string) (string, bool) {
	for _, attr := range e.node.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// Text returns the element's visible text content.
// Each descendant text node is whitespace-trimmed and the non-empty
// pieces are concatenated without a separator, so surrounding markup
// whitespace never counts as link or title text.
func (e *Element) Text() string {
	var sb strings.Builder
	walk(e.node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(strings.TrimSpace(n.Data))
		}
		return true
	})
	return sb.String()
}

// Parent returns the nearest ancestor element node, or nil when the
// element has no element ancestor (e.g. the root <html> element).
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Element{node: p}
		}
	}
	return nil
}

// HasAncestor reports whether any element on the parent chain has the
// given tag name. Used by the form-label check to detect controls
// wrapped in a <label> element.
func (e *Element) HasAncestor(tag string) bool {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p.Tag() == tag {
			return true
		}
	}
	return false
}
