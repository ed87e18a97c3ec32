package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// wordPattern matches runs of ASCII letters, digits and underscores.
var wordPattern = regexp.MustCompile(`\w+`)

// ExtractLinks returns the distinct absolute links of every anchor in doc,
// in the order they first appear. Anchors without an href are skipped, as is
// any target not starting with "http" (relative, fragment, mailto).
func ExtractLinks(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || !strings.HasPrefix(href, "http") {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	return links
}

// VisibleText concatenates every text node of the document. Script and style
// contents are text nodes too and are kept.
func VisibleText(doc *goquery.Document) string {
	return doc.Text()
}

// Tokenize splits text into word tokens in document order.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// TokenizeDocument is Tokenize over the document's visible text.
func TokenizeDocument(doc *goquery.Document) []string {
	return Tokenize(VisibleText(doc))
}
