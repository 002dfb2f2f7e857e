package search

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the text content of an HTML fragment with entities decoded
func StripTags(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return cleanText(getNodeText(doc))
}

// getNodeText extracts all text from a node and its children
func getNodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(getNodeText(c))
	}

	return text.String()
}

// cleanText removes excessive whitespace and normalizes text
func cleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// hostOf returns the host part of rawURL, or "" if it does not parse
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
