package viewmodel

import (
	"satori_dojo/internal/domain/models"
)

// NewsView — новость с очищенным rich-text и разрешёнными связями
type NewsView struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Excerpt        string         `json:"excerpt,omitempty"`
	Content        string         `json:"content,omitempty"`
	Image          string         `json:"image,omitempty"`
	PublishedAt    string         `json:"published_at"`
	Category       string         `json:"category"`
	Author         string         `json:"author"`
	Reactions      []ReactionView `json:"reactions,omitempty"`
	IsHot          bool           `json:"is_hot"`
	IsFeatured     bool           `json:"is_featured"`
	CategoryStyles ThemeStyles    `json:"category_styles"`
}

// ReactionView — реакция с текущим счётчиком
type ReactionView struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// BuildNewsView строит view новости: excerpt отдаётся плоским текстом,
// content — очищенным HTML, счётчики реакций никогда не отрицательные.
func BuildNewsView(news models.News, themes []models.ColorTheme, withContent bool) NewsView {
	view := NewsView{
		ID:          news.ID,
		Title:       news.Title,
		Slug:        news.Slug,
		Excerpt:     StripHTMLTags(news.Excerpt),
		Image:       news.Image,
		PublishedAt: news.PublishedAt,
		Category:    NewsCategoryName(news),
		Author:      NewsAuthorName(news),
		IsHot:       news.IsHot,
		IsFeatured:  news.IsFeatured,
	}

	if withContent {
		view.Content = SanitizeHTML(news.Content)
	}

	var categoryTheme *models.ColorTheme
	var categorySlug string
	if news.Expand.Category != nil {
		categoryTheme = news.Expand.Category.Expand.ColorTheme
		categorySlug = news.Expand.Category.Slug
	}
	view.CategoryStyles = ResolveThemeStyles(categoryTheme, categorySlug, themes, view.Category)

	for _, reaction := range news.Expand.Reactions {
		count := news.ReactionCounts[reaction.Name]
		if count < 0 {
			count = 0
		}
		view.Reactions = append(view.Reactions, ReactionView{
			Name:  reaction.Name,
			Emoji: reaction.Emoji,
			Count: count,
		})
	}

	return view
}

// BuildNewsList строит список новостей без полного содержимого
func BuildNewsList(news []models.News, themes []models.ColorTheme) []NewsView {
	views := make([]NewsView, 0, len(news))
	for _, item := range news {
		views = append(views, BuildNewsView(item, themes, false))
	}
	return views
}
