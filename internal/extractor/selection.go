package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTML returns the outer HTML of every element matching selector, in
// document order. No matches is a normal outcome and yields an empty slice.
func ExtractHTML(html, selector string) (matches []string, err error) {
	defer recoverExtract("selection", &err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	matches = []string{}
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if outer, err := goquery.OuterHtml(s); err == nil {
			matches = append(matches, outer)
		}
	})
	return matches, nil
}
