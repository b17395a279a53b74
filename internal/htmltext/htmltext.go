// Package htmltext flattens an HTML email part to plain text, for
// inbound messages that carry no text part.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Flatten strips an HTML document down to its text. Unparseable input
// degrades to the raw string rather than failing: the normalizer and
// classifier downstream are permissive anyway.
func Flatten(htmlBody string) string {
	if strings.TrimSpace(htmlBody) == "" {
		return ""
	}

	root, err := html.Parse(strings.NewReader(htmlBody))
	if err != nil {
		return htmlBody
	}

	var b strings.Builder
	collectText(root, &b)
	return b.String()
}

var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	// Block-ish boundaries become newlines so quote markers like
	// "\n>" keep working after extraction.
	if n.Type == html.ElementNode {
		switch n.Data {
		case "br", "p", "div", "blockquote", "tr", "li":
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
