package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(FormatMarkdown, "# Aftercare\n\nKeep the paste on for **6 hours**.")
	require.NoError(t, err)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, "<strong>6 hours</strong>")
}

func TestRenderStripsScripts(t *testing.T) {
	out, err := Render(FormatHTML, `<p onclick="steal()">Hi</p><script>alert(1)</script>`)
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", out)

	out, err = Render(FormatMarkdown, "hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "script")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render("rtf", "x")
	assert.Error(t, err)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime("<p>a few words</p>"))

	long := "<p>" + strings.Repeat("word ", 401) + "</p>"
	assert.Equal(t, 3, ReadTime(long))
}

func TestText(t *testing.T) {
	assert.Equal(t, "Tea & lemon", Text("<p>Tea &amp; <em>lemon</em></p>"))
}
