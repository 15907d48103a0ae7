package svgstyle

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Declarations maps camel-cased property names, like "strokeWidth",
// to their raw values.
type Declarations map[string]string

// ParseDeclarations parses the content of a style attribute,
// like "fill: red; stroke-width: 2". Later declarations override
// earlier ones, unless an earlier one is !important.
func ParseDeclarations(style string) (Declarations, error) {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil, nil
	}
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil, err
	}
	out := make(Declarations, len(decls))
	important := map[string]bool{}
	for _, decl := range decls {
		key := CamelCase(strings.ToLower(decl.Property))
		if important[key] && !decl.Important {
			continue
		}
		out[key] = strings.TrimSpace(decl.Value)
		important[key] = decl.Important
	}
	return out, nil
}

// CamelCase converts a dashed CSS property name to its
// camel-cased form: "stroke-opacity" becomes "strokeOpacity".
func CamelCase(property string) string {
	chunks := strings.Split(property, "-")
	var sb strings.Builder
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(chunk)
			continue
		}
		sb.WriteString(strings.ToUpper(chunk[:1]))
		sb.WriteString(chunk[1:])
	}
	return sb.String()
}
