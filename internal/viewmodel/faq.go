package viewmodel

import (
	"satori_dojo/internal/domain/models"
)

// FAQView — вопрос с очищенным ответом и стилями категории
type FAQView struct {
	ID             string      `json:"id"`
	Question       string      `json:"question"`
	Answer         string      `json:"answer"`
	Category       string      `json:"category,omitempty"`
	CategoryStyles ThemeStyles `json:"category_styles"`
}

// BuildFAQList строит список вопросов: ответы отдаются очищенным HTML
func BuildFAQList(items []models.FAQ, themes []models.ColorTheme) []FAQView {
	views := make([]FAQView, 0, len(items))
	for _, item := range items {
		var categoryTheme *models.ColorTheme
		var categoryName, categorySlug string

		if item.Expand.Category != nil {
			categoryTheme = item.Expand.Category.Expand.ColorTheme
			categoryName = item.Expand.Category.Name
			categorySlug = item.Expand.Category.Slug
		}

		views = append(views, FAQView{
			ID:             item.ID,
			Question:       item.Question,
			Answer:         SanitizeHTML(item.Answer),
			Category:       categoryName,
			CategoryStyles: ResolveThemeStyles(categoryTheme, categorySlug, themes, categoryName),
		})
	}
	return views
}
