package models

// Trainer представляет тренера школы
type Trainer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Experience     int    `json:"experience_years"`
	ShortBio       string `json:"short_bio,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Photo          string `json:"photo,omitempty"`
	Achievements   string `json:"achievements,omitempty"`
	IsActive       bool   `json:"is_active"`
	SortOrder      int    `json:"sort_order"`
}
