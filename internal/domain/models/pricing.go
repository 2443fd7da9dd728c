package models

// PricingPlan представляет тарифный план абонемента
type PricingPlan struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Period     string  `json:"period"`
	Features   string  `json:"features,omitempty"`
	IsPopular  bool    `json:"is_popular"`
	BadgeText  string  `json:"badge_text,omitempty"`
	ButtonText string  `json:"button_text,omitempty"`
	ButtonLink string  `json:"button_link,omitempty"`
	IsActive   bool    `json:"is_active"`
	SortOrder  int     `json:"sort_order"`
}
