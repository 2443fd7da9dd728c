package viewmodel

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Политика отображения rich-text полей: фиксированный небольшой набор
// блочных и строчных тегов, все атрибуты срезаются, содержимое
// script/style выбрасывается целиком.
var displayPolicy = newDisplayPolicy()

func newDisplayPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "span", "div",
	)
	p.SkipElementsContent("script", "style")
	return p
}

var (
	blockCloseRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</h[1-6]>|</div>`)
	anyTagRe     = regexp.MustCompile(`<[^>]*>`)
	blankLinesRe = regexp.MustCompile(`\n{2,}`)
	emptyBlockRe = regexp.MustCompile(`(?i)<(p|div)>\s*</(p|div)>`)
	multiBreakRe = regexp.MustCompile(`(?i)(<br\s*/?>\s*){2,}`)
)

// StripHTMLTags превращает rich-text в плоский текст: закрытия блочных
// тегов становятся переводами строк, остальные теги удаляются,
// пустые строки схлопываются.
func StripHTMLTags(html string) string {
	text := blockCloseRe.ReplaceAllString(html, "\n")
	text = anyTagRe.ReplaceAllString(text, "")
	text = blankLinesRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// SanitizeHTML очищает rich-text для отдачи клиенту: белый список тегов,
// без атрибутов, скрипты и стили удаляются вместе с содержимым,
// пустые и повторные блочные теги схлопываются.
func SanitizeHTML(html string) string {
	out := displayPolicy.Sanitize(html)
	out = emptyBlockRe.ReplaceAllString(out, "")
	out = multiBreakRe.ReplaceAllString(out, "<br>")
	return strings.TrimSpace(out)
}
