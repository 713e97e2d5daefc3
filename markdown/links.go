package markdown

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExternalLinks makes absolute http(s) links open in a new tab.
func ExternalLinks(doc *goquery.Document) {
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		uri, err := url.Parse(s.AttrOr("href", ""))
		if err != nil || !uri.IsAbs() {
			return
		}

		if uri.Scheme != "http" && uri.Scheme != "https" {
			return
		}

		s.SetAttr("target", "_blank")
		s.SetAttr("rel", "noopener noreferrer")
	})
}

// FirstParagraph returns the text of the first non-empty paragraph.
func FirstParagraph(doc *goquery.Document) string {
	var text string

	doc.Find("body > p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text = strings.TrimSpace(s.Text())
		return text == ""
	})

	return text
}

// WordCount counts the words of the rendered body.
func WordCount(doc *goquery.Document) int {
	return len(strings.Fields(doc.Find("body").Text()))
}

// BodyHTML returns the inner HTML of the document body.
func BodyHTML(doc *goquery.Document) (string, error) {
	return doc.Find("body").Html()
}
