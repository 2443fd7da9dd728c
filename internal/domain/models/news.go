package models

// News представляет новость на сайте
type News struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Excerpt        string         `json:"excerpt,omitempty"`
	Content        string         `json:"content"`
	Image          string         `json:"image,omitempty"`
	PublishedAt    string         `json:"published_at"`
	Category       string         `json:"category"`
	Author         string         `json:"author"`
	Reactions      []string       `json:"reactions,omitempty"`
	ReactionCounts map[string]int `json:"reaction_counts,omitempty"`
	IsHot          bool           `json:"is_hot"`
	IsFeatured     bool           `json:"is_featured"`
	IsPublished    bool           `json:"is_published"`
	SortOrder      int            `json:"sort_order"`

	Expand NewsExpand `json:"expand,omitempty"`
}

type NewsExpand struct {
	Category  *NewsCategory  `json:"category,omitempty"`
	Author    *NewsAuthor    `json:"author,omitempty"`
	Reactions []ReactionType `json:"reactions,omitempty"`
}

// NewsCategory представляет категорию новостей
type NewsCategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ColorTheme string `json:"color_theme,omitempty"`
	IsActive   bool   `json:"is_active"`
	SortOrder  int    `json:"sort_order"`

	Expand CategoryExpand `json:"expand,omitempty"`
}

type CategoryExpand struct {
	ColorTheme *ColorTheme `json:"color_theme,omitempty"`
}

// NewsAuthor представляет автора новостей
type NewsAuthor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Photo    string `json:"photo,omitempty"`
	IsActive bool   `json:"is_active"`
}

// ReactionType представляет именованную эмодзи-реакцию,
// счётчик которой хранится в News.ReactionCounts по имени.
type ReactionType struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}
