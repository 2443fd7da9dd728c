package models

// FAQ представляет вопрос-ответ
type FAQ struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
	SortOrder int    `json:"sort_order"`

	Expand FAQExpand `json:"expand,omitempty"`
}

type FAQExpand struct {
	Category *FAQCategory `json:"category,omitempty"`
}

// FAQCategory представляет категорию вопросов
type FAQCategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ColorTheme string `json:"color_theme,omitempty"`
	IsActive   bool   `json:"is_active"`
	SortOrder  int    `json:"sort_order"`

	Expand CategoryExpand `json:"expand,omitempty"`
}
