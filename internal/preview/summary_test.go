package preview

import (
	"strings"
	"testing"
)

const samplePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <title>  Acme   Rockets </title>
  <meta name="description" content="Rockets for everyone">
  <link rel="stylesheet" href="/site.css">
  <style>body { margin: 0 }</style>
  <script src="/app.js"></script>
</head>
<body>
  <h1>Welcome</h1>
  <p>Fast rockets,
     cheap fuel.</p>
  <h2>Products</h2>
  <a href="/one">One</a> <a href="/two">Two</a> <a>no href</a>
  <img src="a.png"><img src="b.png">
  <h3>   </h3>
  <script>console.log("hidden")</script>
</body>
</html>`

func TestSummarize(t *testing.T) {
	summary, err := Summarize(samplePage)
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}

	if summary.Title != "Acme Rockets" {
		t.Errorf("Title = %q, expected %q", summary.Title, "Acme Rockets")
	}
	if summary.Description != "Rockets for everyone" {
		t.Errorf("Description = %q", summary.Description)
	}
	if summary.Language != "en" {
		t.Errorf("Language = %q, expected en", summary.Language)
	}
	if summary.Links != 2 {
		t.Errorf("Links = %d, expected 2", summary.Links)
	}
	if summary.Images != 2 {
		t.Errorf("Images = %d, expected 2", summary.Images)
	}
	if summary.Stylesheets != 2 {
		t.Errorf("Stylesheets = %d, expected 2", summary.Stylesheets)
	}
	if summary.Scripts != 2 {
		t.Errorf("Scripts = %d, expected 2", summary.Scripts)
	}

	if len(summary.Headings) != 2 {
		t.Fatalf("Expected 2 non-empty headings, got %d: %+v", len(summary.Headings), summary.Headings)
	}
	if summary.Headings[0] != (Heading{Level: 1, Text: "Welcome"}) {
		t.Errorf("First heading = %+v", summary.Headings[0])
	}
	if summary.Headings[1] != (Heading{Level: 2, Text: "Products"}) {
		t.Errorf("Second heading = %+v", summary.Headings[1])
	}

	if !strings.Contains(summary.Excerpt, "Fast rockets, cheap fuel.") {
		t.Errorf("Excerpt should contain collapsed body text, got %q", summary.Excerpt)
	}
	if strings.Contains(summary.Excerpt, "console.log") {
		t.Errorf("Excerpt should not contain script text, got %q", summary.Excerpt)
	}
}

func TestSummarize_Fragment(t *testing.T) {
	summary, err := Summarize("<p>x</p>")
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}
	if summary.Title != "" {
		t.Errorf("Title = %q, expected empty", summary.Title)
	}
	if summary.Excerpt != "x" {
		t.Errorf("Excerpt = %q, expected %q", summary.Excerpt, "x")
	}
}

func TestSummarize_TruncatesExcerpt(t *testing.T) {
	long := "<body><p>" + strings.Repeat("word ", 500) + "</p></body>"

	summary, err := Summarize(long)
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}
	if !strings.HasSuffix(summary.Excerpt, "…") {
		t.Errorf("Long excerpt should end with an ellipsis")
	}
	if n := len([]rune(summary.Excerpt)); n > MaxExcerptRunes+1 {
		t.Errorf("Excerpt has %d runes, expected at most %d", n, MaxExcerptRunes+1)
	}
}

func TestSummarize_LimitsHeadings(t *testing.T) {
	var b strings.Builder
	for i := 0; i < MaxHeadings*2; i++ {
		b.WriteString("<h2>Section</h2>")
	}

	summary, err := Summarize(b.String())
	if err != nil {
		t.Fatalf("Summarize() returned error: %v", err)
	}
	if len(summary.Headings) != MaxHeadings {
		t.Errorf("Expected %d headings, got %d", MaxHeadings, len(summary.Headings))
	}
}

func TestSummary_Markdown(t *testing.T) {
	summary := Summary{
		Title:    "Rocket *Launch*",
		Headings: []Heading{{Level: 1, Text: "Intro"}, {Level: 2, Text: "Details"}},
		Excerpt:  "Hello",
		Links:    3,
	}

	md := summary.Markdown()

	expectations := []string{
		`# Rocket \*Launch\*`,
		"3 links · 0 images · 0 stylesheets · 0 scripts",
		"- Intro\n",
		"  - Details\n",
		"## Text",
	}
	for _, expected := range expectations {
		if !strings.Contains(md, expected) {
			t.Errorf("Markdown() missing %q in:\n%s", expected, md)
		}
	}

	if !strings.Contains(Summary{}.Markdown(), "# Untitled page") {
		t.Error("Empty summary should fall back to an untitled heading")
	}
}
