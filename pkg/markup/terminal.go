// Package markup turns the chat's reply markup into terminal text.
package markup

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// Styles applied to emphasised text and links.
type Styles struct {
	Strong lipgloss.Style
	Link   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Strong: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Link:   lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#06B6D4")),
	}
}

// PlainStyles leaves text unstyled.
func PlainStyles() Styles {
	return Styles{Strong: lipgloss.NewStyle(), Link: lipgloss.NewStyle()}
}

// ToTerminal renders <strong>, <br> and <a href> for a terminal. Links are
// printed as "text (href)". Unknown tags are dropped, their text kept.
func ToTerminal(markup string, st Styles) string {
	var out, strong strings.Builder
	var href string
	inStrong, inLink := false, false

	flushStrong := func() {
		if strong.Len() > 0 {
			out.WriteString(st.Strong.Render(strong.String()))
			strong.Reset()
		}
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				out.WriteString(markup)
				return out.String()
			}
			flushStrong()
			return strings.TrimSpace(out.String())
		case html.TextToken:
			text := string(z.Text())
			switch {
			case inLink:
				out.WriteString(st.Link.Render(text + " (" + href + ")"))
			case inStrong:
				strong.WriteString(text)
			default:
				out.WriteString(text)
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "br":
				flushStrong()
				out.WriteString("\n")
			case "strong", "b":
				inStrong = true
			case "a":
				inLink = true
				href = ""
				for hasAttr {
					var k, v []byte
					k, v, hasAttr = z.TagAttr()
					if string(k) == "href" {
						href = string(v)
					}
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "strong", "b":
				flushStrong()
				inStrong = false
			case "a":
				inLink = false
			}
		}
	}
}
