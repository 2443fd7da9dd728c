package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"satori_dojo/internal/lib/logger/sl"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrNotConfigured возвращается, когда токен бота или идентификатор чата
// не заданы: форма связи деградирует до явной ошибки, а не падения.
var ErrNotConfigured = errors.New("telegram bot token or chat id is not configured")

// ContactRequest — заявка с формы обратной связи
type ContactRequest struct {
	Name           string
	Phone          string
	ContactMethods []string
	AdditionalInfo string
}

// ContactService пересылает заявки с формы в Telegram-чат школы
type ContactService struct {
	log    *slog.Logger
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewContactService создаёт сервис пересылки. При пустом токене или чате
// возвращается неконфигурированный сервис: Send будет отвечать
// ErrNotConfigured вместо отправки.
func NewContactService(log *slog.Logger, token string, chatID int64, apiEndpoint string) (*ContactService, error) {
	const op = "contact_service.NewContactService"

	if token == "" || chatID == 0 {
		log.Warn("telegram forwarding disabled: missing bot token or chat id", slog.String("op", op))
		return &ContactService{log: log}, nil
	}

	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &ContactService{
		log:    log,
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Send форматирует заявку в текст и отправляет её в чат школы
func (s *ContactService) Send(ctx context.Context, req ContactRequest) error {
	const op = "contact_service.Send"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
	)

	if s.bot == nil {
		return ErrNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(s.chatID, FormatContactMessage(req))

	if _, err := s.bot.Send(msg); err != nil {
		log.Error("failed to forward contact request", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("contact request forwarded")
	return nil
}

// FormatContactMessage собирает текст заявки по шаблону
func FormatContactMessage(req ContactRequest) string {
	var b strings.Builder

	b.WriteString("🥋 Новая заявка с сайта!\n\n")
	b.WriteString("👤 Имя: " + req.Name + "\n")
	b.WriteString("📞 Телефон: " + req.Phone + "\n")

	if len(req.ContactMethods) > 0 {
		b.WriteString("💬 Способы связи: " + strings.Join(req.ContactMethods, ", ") + "\n")
	}
	if req.AdditionalInfo != "" {
		b.WriteString("📝 Дополнительно: " + req.AdditionalInfo + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
