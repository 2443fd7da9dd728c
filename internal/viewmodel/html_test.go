package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "paragraphs become lines",
			html:     "<p>A</p><p>B</p>",
			expected: "A\nB",
		},
		{
			name:     "br and headings",
			html:     "<h2>Заголовок</h2>Первая<br>Вторая",
			expected: "Заголовок\nПервая\nВторая",
		},
		{
			name:     "blank lines collapse",
			html:     "<p>A</p><p></p><p></p><p>B</p>",
			expected: "A\nB",
		},
		{
			name:     "plain text untouched",
			html:     "просто текст",
			expected: "просто текст",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTMLTags(tt.html))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "script removed with content",
			html:     "<script>alert(1)</script><b>ok</b>",
			expected: "<b>ok</b>",
		},
		{
			name:     "attributes stripped",
			html:     `<p class="x" onclick="evil()">text</p>`,
			expected: "<p>text</p>",
		},
		{
			name:     "disallowed tags dropped",
			html:     `<iframe src="x"></iframe><em>ok</em>`,
			expected: "<em>ok</em>",
		},
		{
			name:     "empty blocks collapse",
			html:     "<p>A</p><p></p><div>  </div><p>B</p>",
			expected: "<p>A</p><p>B</p>",
		},
		{
			name:     "repeated breaks collapse",
			html:     "A<br><br><br>B",
			expected: "A<br>B",
		},
		{
			name:     "style removed with content",
			html:     "<style>body{display:none}</style><p>visible</p>",
			expected: "<p>visible</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeHTML(tt.html))
		})
	}
}
