// Provides the element tree consumed by the conversion pipeline.
// The tree is a plain, read-mostly structure: parsing produces it,
// and the pipeline only queries it (attributes, children, ids).
package svgdom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRoot is returned when the markup contains no element at all.
	ErrNoRoot = errors.New("invalid svg xml: no root element")
	// ErrNotSVGRoot is returned when the root element is not <svg>.
	ErrNotSVGRoot = errors.New("invalid svg xml: root element is not svg")
)

// Attr is a single attribute. Namespaces are dropped:
// only the local name is kept, so that xlink:href is seen as href.
type Attr struct {
	Name, Value string
}

// Attributes keeps the attributes in source order.
type Attributes []Attr

// Get returns the value of the attribute `name`, if present.
func (as Attributes) Get(name string) (string, bool) {
	for _, a := range as {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Value returns the attribute value, or an empty string.
func (as Attributes) Value(name string) string {
	v, _ := as.Get(name)
	return v
}

// Has returns true if the attribute is present.
func (as Attributes) Has(name string) bool {
	_, ok := as.Get(name)
	return ok
}

// Set replaces an existing value or appends a new attribute.
func (as *Attributes) Set(name, value string) {
	for i, a := range *as {
		if a.Name == name {
			(*as)[i].Value = value
			return
		}
	}
	*as = append(*as, Attr{Name: name, Value: value})
}

// Clone returns a copy which may be modified freely.
func (as Attributes) Clone() Attributes {
	if as == nil {
		return nil
	}
	return append(Attributes(nil), as...)
}

// Node is an element of the tree.
type Node struct {
	Tag      string // local name, like "rect"
	Attrs    Attributes
	Children []*Node
	Parent   *Node
}

// NewNode returns a detached element.
func NewNode(tag string, attrs ...Attr) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

// AppendChild attaches `child` as the last child of `n`.
func (n *Node) AppendChild(child *Node) *Node {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Attr is a shortcut for n.Attrs.Value(name).
func (n *Node) Attr(name string) string { return n.Attrs.Value(name) }

// ID returns the id attribute.
func (n *Node) ID() string { return n.Attrs.Value("id") }

// Clone returns a deep copy of the subtree rooted at `n`.
// The copy is detached: its Parent is nil.
func (n *Node) Clone() *Node {
	out := &Node{Tag: n.Tag, Attrs: n.Attrs.Clone()}
	if len(n.Children) != 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cc := c.Clone()
			cc.Parent = out
			out.Children[i] = cc
		}
	}
	return out
}

// Walk calls `fn` on `n` and its descendants, in document order.
// When `fn` returns false, the children of the current node are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Descendants returns the descendants of `n` (excluding `n` itself)
// whose tag is one of `tags`, in document order.
// An empty `tags` matches every element.
func (n *Node) Descendants(tags ...string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		c.Walk(func(e *Node) bool {
			if len(tags) == 0 || hasTag(tags, e.Tag) {
				out = append(out, e)
			}
			return true
		})
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ByID returns the first element in the subtree with the given id,
// or nil.
func (n *Node) ByID(id string) *Node {
	var found *Node
	n.Walk(func(e *Node) bool {
		if found != nil {
			return false
		}
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	fmt.Fprintf(&sb, "> (%d children)", len(n.Children))
	return sb.String()
}

// Parse reads an element tree from `stream`, honoring the
// encoding declared in the XML header.
// The root element must be <svg>.
func Parse(stream io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	var (
		root  *Node
		stack []*Node
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			node := &Node{Tag: se.Name.Local, Attrs: make(Attributes, 0, len(se.Attr))}
			for _, attr := range se.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue
				}
				node.Attrs = append(node.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
			}
			if len(stack) == 0 {
				if root != nil { // trailing elements after the root are ignored
					continue
				}
				if node.Tag != "svg" {
					return nil, ErrNotSVGRoot
				}
				root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) != 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(markup string) (*Node, error) {
	return Parse(strings.NewReader(markup))
}
