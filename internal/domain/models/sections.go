package models

// HeroContent — содержимое главного экрана. В коллекции ожидается
// не больше одной активной записи.
type HeroContent struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle,omitempty"`
	Image      string `json:"image,omitempty"`
	ButtonText string `json:"button_text,omitempty"`
	ButtonLink string `json:"button_link,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// CTABanner — баннер призыва к действию
type CTABanner struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Text       string `json:"text,omitempty"`
	ButtonText string `json:"button_text,omitempty"`
	ButtonLink string `json:"button_link,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// PromoSection — промо-блок с акцией
type PromoSection struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Text     string `json:"text,omitempty"`
	Image    string `json:"image,omitempty"`
	IsActive bool   `json:"is_active"`
}

// SocialLinks — ссылки на соцсети школы. Загружаются один раз при старте
// приложения и передаются вниз явно, без глобального состояния.
type SocialLinks struct {
	ID       string `json:"id"`
	Telegram string `json:"telegram,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	VK       string `json:"vk,omitempty"`
	YouTube  string `json:"youtube,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"is_active"`
}
