// Package markup turns HTML snippets returned by search APIs into plain text.
package markup

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Normalize decodes entities, drops tags and collapses whitespace runs into
// single spaces. Rounds repeat until the text stops changing, so
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	text := normalizeOnce(raw)

	// A changing round strips at least one escape level or tag, so the
	// input length bounds the rounds; double-escaped input needs several.
	for range len(raw) + 1 {
		next := normalizeOnce(text)
		if next == text {
			break
		}
		text = next
	}

	return text
}

func normalizeOnce(raw string) string {
	if raw == "" {
		return ""
	}

	return collapseSpaces(extractText(html.UnescapeString(raw)))
}

func extractText(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// Unparseable input is already the best text we have.
		return s
	}

	return doc.Text()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
