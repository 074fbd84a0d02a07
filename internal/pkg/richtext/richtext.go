// Package richtext renders and sanitises the rich content stored for blog
// posts and page sections.
package richtext

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// WordsPerMinute is the reading speed used for read time estimates.
const WordsPerMinute = 200

var (
	md = goldmark.New(goldmark.WithExtensions(extension.GFM))

	ugc   = bluemonday.UGCPolicy()
	plain = func() *bluemonday.Policy {
		p := bluemonday.StrictPolicy()
		p.AddSpaceWhenStrippingTag(true)
		return p
	}()
)

// Render turns content in the given format into sanitised HTML.
func Render(format, content string) (string, error) {
	switch format {
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return Sanitize(buf.String()), nil
	case FormatHTML, "":
		return Sanitize(content), nil
	default:
		return "", fmt.Errorf("unknown content format %q", format)
	}
}

// Sanitize strips scripts, event handlers and anything else outside the
// user-generated-content allow-list.
func Sanitize(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// Text reduces rendered HTML to its plain words.
func Text(renderedHTML string) string {
	return strings.Join(strings.Fields(html.UnescapeString(plain.Sanitize(renderedHTML))), " ")
}

// ReadTime estimates whole minutes to read rendered HTML; never below one.
func ReadTime(renderedHTML string) int {
	words := len(strings.Fields(Text(renderedHTML)))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
