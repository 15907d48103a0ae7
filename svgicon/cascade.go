package svgicon

import (
	"strings"

	"github.com/benoitkugler/svgpoly/svgdom"
	"github.com/benoitkugler/svgpoly/svgstyle"
	"github.com/srwiley/rasterx"
)

// paint attributes copied from containers to children lacking them
var cascadedAttrs = [...]string{"fill", "stroke", "stroke-width", "style", "color"}

// elements whose content is never rendered directly
var skippedTags = map[string]bool{
	"defs":           true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"pattern":        true,
	"marker":         true,
	"linearGradient": true,
	"radialGradient": true,
	"filter":         true,
	"style":          true,
	"title":          true,
	"desc":           true,
	"metadata":       true,
	"script":         true,
}

var containerTags = map[string]bool{
	"svg":    true,
	"g":      true,
	"a":      true,
	"switch": true,
}

// inherited is the context a container passes down to its children.
type inherited struct {
	transform rasterx.Matrix2D
	attrs     svgdom.Attributes // only cascadedAttrs
}

// resolvedShape is a leaf element with its cascaded transform
// and attributes. The attributes of the source node are never modified.
type resolvedShape struct {
	node      *svgdom.Node
	transform rasterx.Matrix2D
	attrs     svgdom.Attributes
}

// cascader walks the tree top-down once, storing what it resolves
// in a side map keyed by node.
type cascader struct {
	opts     Options
	root     *svgdom.Node
	resolved map[*svgdom.Node]resolvedShape
	order    []*svgdom.Node // leaves, in document order
	useStack []string       // ids being instantiated, to cut cycles
}

// cascade resolves the transform and paint attributes of every
// shape element below `root`. Container transforms are composed as
// parent.Mult(child): the child local transform applies first.
func cascade(root *svgdom.Node, opts Options) []resolvedShape {
	c := cascader{opts: opts, root: root, resolved: make(map[*svgdom.Node]resolvedShape)}
	c.visit(root, inherited{transform: rasterx.Identity})
	out := make([]resolvedShape, len(c.order))
	for i, n := range c.order {
		out[i] = c.resolved[n]
	}
	return out
}

// localTransform parses the transform attribute of `n`.
// An invalid transform is ignored, with a warning.
func (c *cascader) localTransform(n *svgdom.Node) rasterx.Matrix2D {
	v, ok := n.Attrs.Get("transform")
	if !ok {
		return rasterx.Identity
	}
	m, err := parseTransform(v)
	if err != nil {
		c.opts.warn("ignoring invalid transform", "tag", n.Tag, "id", n.ID(), "err", err)
		return rasterx.Identity
	}
	return m
}

// merge returns the attributes of `n`, completed by the inherited ones
func merge(n *svgdom.Node, parent inherited) svgdom.Attributes {
	attrs := n.Attrs.Clone()
	for _, a := range parent.attrs {
		if !attrs.Has(a.Name) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

func (ctx inherited) child(m rasterx.Matrix2D, attrs svgdom.Attributes) inherited {
	out := inherited{transform: m}
	for _, name := range cascadedAttrs {
		if v, ok := attrs.Get(name); ok {
			out.attrs = append(out.attrs, svgdom.Attr{Name: name, Value: v})
		}
	}
	return out
}

func (c *cascader) visit(n *svgdom.Node, parent inherited) {
	if skippedTags[n.Tag] {
		return
	}
	m := parent.transform.Mult(c.localTransform(n))
	attrs := merge(n, parent)

	switch {
	case containerTags[n.Tag]:
		if n.Tag == "svg" && n != c.root {
			m = m.Translate(c.number(n, "x"), c.number(n, "y"))
		}
		c.visitChildren(n, parent.child(m, attrs))
	case n.Tag == "use":
		c.visitUse(n, parent.child(m, attrs))
	default:
		c.resolved[n] = resolvedShape{node: n, transform: m, attrs: attrs}
		c.order = append(c.order, n)
	}
}

func (c *cascader) visitChildren(n *svgdom.Node, ctx inherited) {
	for _, child := range n.Children {
		c.visit(child, ctx)
	}
}

func (c *cascader) number(n *svgdom.Node, name string) float64 {
	v, ok := n.Attrs.Get(name)
	if !ok {
		return 0
	}
	l, err := svgstyle.ParseLength(v)
	if err != nil || l.IsPercent() {
		c.opts.warn("ignoring invalid attribute", "tag", n.Tag, "attr", name, "value", v)
		return 0
	}
	return l.Resolve(0)
}

// visitUse instantiates the element referenced by `n`, as a
// copy translated by (x, y).
func (c *cascader) visitUse(n *svgdom.Node, ctx inherited) {
	href := strings.TrimSpace(n.Attr("href")) // xlink:href is seen as href
	if !strings.HasPrefix(href, "#") {
		c.opts.warn("skipping use element: only local references are supported", "href", href)
		return
	}
	id := href[1:]
	for _, active := range c.useStack {
		if active == id {
			c.opts.warn("skipping use element: circular reference", "href", href)
			return
		}
	}
	target := c.root.ByID(id)
	if target == nil {
		c.opts.warn("skipping use element: reference not found", "href", href)
		return
	}

	c.useStack = append(c.useStack, id)
	defer func() { c.useStack = c.useStack[:len(c.useStack)-1] }()

	ctx.transform = ctx.transform.Translate(c.number(n, "x"), c.number(n, "y"))
	instance := target.Clone()
	if instance.Tag == "symbol" {
		// a symbol is only rendered when instantiated, as a group
		ctx.transform = ctx.transform.Mult(c.localTransform(instance))
		c.visitChildren(instance, ctx.child(ctx.transform, merge(instance, ctx)))
		return
	}
	c.visit(instance, ctx)
}
