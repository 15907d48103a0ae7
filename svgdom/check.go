package svgdom

import "regexp"

var (
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)

	// optional XML declaration, optional doctype (with an internal subset),
	// then an <svg> root, either closed at the end of the input or self-closed
	svgRe = regexp.MustCompile(`(?is)^\s*(?:<\?xml[^>]*>\s*)?(?:<!doctype\s+svg[^\[>]*(?:\[[^\]]*\])?\s*>\s*)?` +
		`(?:<svg\b[^>]*>.*</svg>|<svg\b[^>]*/>)\s*$`)
)

// IsPlausibleSVG performs a cheap structural test on `markup`,
// ignoring XML comments. It does not validate the document: it only
// rejects inputs which are obviously not SVG, before any parsing.
func IsPlausibleSVG(markup string) bool {
	markup = commentRe.ReplaceAllString(markup, "")
	return svgRe.MatchString(markup)
}
