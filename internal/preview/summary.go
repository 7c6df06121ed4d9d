// Package preview renders a cloned page from its markup text. The desktop
// toolkit has no HTML engine, so the generated page is previewed as a
// structural summary built with goquery: title, description, headings,
// visible text and asset counts.
package preview

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Preview limits
const (
	MaxHeadings     = 12
	MaxExcerptRunes = 600
)

// Summary is what the Generated tab shows for an artifact
type Summary struct {
	Title       string
	Description string
	Language    string
	Headings    []Heading
	Excerpt     string
	Links       int
	Images      int
	Stylesheets int // <link rel=stylesheet> and <style> blocks
	Scripts     int
}

// Heading is one h1-h3 element in document order
type Heading struct {
	Level int
	Text  string
}

// Summarize parses artifact markup. Parsing is lenient: any text yields a
// summary, possibly an empty one.
func Summarize(artifact string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(artifact))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse artifact: %w", err)
	}

	summary := Summary{
		Title:       collapse(doc.Find("title").First().Text()),
		Description: collapse(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		Language:    strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
		Links:       doc.Find("a[href]").Length(),
		Images:      doc.Find("img").Length(),
		Stylesheets: doc.Find(`link[rel="stylesheet"], style`).Length(),
		Scripts:     doc.Find("script").Length(),
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := collapse(s.Text())
		if text == "" {
			return true
		}
		summary.Headings = append(summary.Headings, Heading{
			Level: headingLevel(goquery.NodeName(s)),
			Text:  text,
		})
		return len(summary.Headings) < MaxHeadings
	})

	body := doc.Find("body").Clone()
	body.Find("script, style, noscript, template").Remove()
	summary.Excerpt = truncate(collapse(body.Text()), MaxExcerptRunes)

	return summary, nil
}

// Markdown renders the summary for a Fyne RichText widget
func (s Summary) Markdown() string {
	var b strings.Builder

	title := s.Title
	if title == "" {
		title = "Untitled page"
	}
	b.WriteString("# " + escape(title) + "\n\n")

	if s.Description != "" {
		b.WriteString("*" + escape(s.Description) + "*\n\n")
	}

	b.WriteString(fmt.Sprintf("%d links · %d images · %d stylesheets · %d scripts\n\n",
		s.Links, s.Images, s.Stylesheets, s.Scripts))

	if len(s.Headings) > 0 {
		b.WriteString("## Outline\n\n")
		for _, h := range s.Headings {
			b.WriteString(strings.Repeat("  ", h.Level-1) + "- " + escape(h.Text) + "\n")
		}
		b.WriteString("\n")
	}

	if s.Excerpt != "" {
		b.WriteString("## Text\n\n")
		b.WriteString(escape(s.Excerpt) + "\n")
	}

	return b.String()
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	default:
		return 3
	}
}

// collapse joins runs of whitespace into single spaces
func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

func escape(text string) string {
	return markdownEscaper.Replace(text)
}
