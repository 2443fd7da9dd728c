package request

// ContactFormRequest — заявка с формы обратной связи
type ContactFormRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Phone          string   `json:"phone" validate:"required,min=5,max=20"`
	ContactMethods []string `json:"contactMethods" validate:"omitempty,dive,oneof=phone telegram whatsapp"`
	AdditionalInfo string   `json:"additionalInfo" validate:"max=1000"`
}

// ToggleReactionRequest — переключение реакции на новости
type ToggleReactionRequest struct {
	Reaction string `json:"reaction" validate:"required"`
	Active   bool   `json:"active"`
}
