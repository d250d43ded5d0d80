// Package textutil normalizes text pulled out of HTML documents.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Clean collapses every run of whitespace into a single space and trims the result
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HasDigit reports whether s contains at least one decimal digit
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// NodeText returns the visible text below n with text nodes joined by a
// single space, then cleaned. Script, style and template contents are skipped.
func NodeText(n *html.Node) string {
	if n == nil {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template, atom.Noscript:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return Clean(strings.Join(parts, " "))
}

// NodesText joins the text of several sibling nodes (e.g. a goquery selection)
func NodesText(nodes []*html.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if t := NodeText(n); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
