package models

// ColorTheme представляет именованную палитру, переиспользуемую
// локациями, уровнями и категориями новостей/FAQ.
// Transparency — процент прозрачности 0-100, где 100 = полностью прозрачно.
type ColorTheme struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	BorderColor     string `json:"border_color"`
	Transparency    int    `json:"transparency"`
	IsActive        bool   `json:"is_active"`
	SortOrder       int    `json:"sort_order"`
}
