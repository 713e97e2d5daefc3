package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"
)

// ImplicitFigure turns paragraphs holding nothing but an image into figures
// captioned with the image's alt text.
func ImplicitFigure(doc *goquery.Document) {
	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		n := s.Nodes[0]

		if n.FirstChild == nil || n.FirstChild != n.LastChild {
			return
		}

		if n.FirstChild.Type != nethtml.ElementNode || n.FirstChild.Data != "img" {
			return
		}

		img := s.Children()
		src, ok := img.Attr("src")
		if !ok {
			return
		}

		alt := img.AttrOr("alt", "")

		var b strings.Builder
		fmt.Fprintf(&b, `<figure><img src="%s" alt="%s" loading="lazy">`, html.EscapeString(src), html.EscapeString(alt))
		if alt != "" {
			fmt.Fprintf(&b, "<figcaption>%s</figcaption>", html.EscapeString(alt))
		}
		b.WriteString("</figure>")

		s.ReplaceWithHtml(b.String())
	})
}
