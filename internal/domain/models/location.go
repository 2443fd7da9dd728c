package models

// Location представляет зал, в котором проходят тренировки
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	Equipment   string `json:"equipment,omitempty"`
	ColorTheme  string `json:"color_theme,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`

	Expand LocationExpand `json:"expand,omitempty"`
}

type LocationExpand struct {
	ColorTheme *ColorTheme `json:"color_theme,omitempty"`
}

// TrainingLevel представляет уровень подготовки группы
type TrainingLevel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ColorTheme  string `json:"color_theme,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`

	Expand LevelExpand `json:"expand,omitempty"`
}

type LevelExpand struct {
	ColorTheme *ColorTheme `json:"color_theme,omitempty"`
}
