// Package escape provides HTML, attribute, and URL escaping helpers.
package escape

import (
	"html"
	"net/url"
	"strings"
)

var attributeReplacer = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

// HTML escapes text for interpolation into HTML element content.
func HTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML reverses HTML entity escaping.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

// Attribute escapes text for interpolation into a quoted HTML attribute.
// Control whitespace is entity-encoded so attribute values survive
// serialization round trips.
func Attribute(s string) string {
	return attributeReplacer.Replace(s)
}

// URL escapes text for use inside a URL query component.
func URL(s string) string {
	return url.QueryEscape(s)
}
