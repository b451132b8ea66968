package parse

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/pagepeek/pagepeek/internal/model"
)

// MaxLinks caps how many anchors are collected from a single page.
// Anchors past the cap are silently ignored.
const MaxLinks = 200

// Extract parses HTML text and returns the page title and outbound links.
//
// Empty or whitespace-only input yields an empty summary and no error.
// The tokenizer decodes HTML entities, so title and link text come back as
// plain text. Link text falls back to the href when the anchor is empty.
func Extract(htmlText string) (*model.PageSummary, error) {
	summary := &model.PageSummary{
		Links: make([]model.ParsedLink, 0),
	}

	if strings.TrimSpace(htmlText) == "" {
		return summary, nil
	}

	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}

	// Walk the DOM tree in document order
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if summary.Title == "" {
					summary.Title = strings.TrimSpace(innerText(n))
				}
			case "a":
				collectLink(n, summary)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return summary, nil
}

// collectLink appends one anchor to the summary, subject to the link cap.
func collectLink(n *html.Node, summary *model.PageSummary) {
	if len(summary.Links) >= MaxLinks {
		return
	}

	href := strings.TrimSpace(getAttr(n, "href"))
	if href == "" {
		return
	}

	text := collapseSpace(innerText(n))
	if text == "" {
		text = href
	}

	summary.Links = append(summary.Links, model.ParsedLink{Href: href, Text: text})
}

// innerText concatenates all text nodes beneath n.
func innerText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// collapseSpace trims and collapses internal runs of whitespace to single
// spaces, so multi-line anchors read as one label.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
