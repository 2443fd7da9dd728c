package app

import (
	"context"
	"log/slog"

	httpapp "satori_dojo/internal/app/http"
	"satori_dojo/internal/config"
	"satori_dojo/internal/domain/models"
	"satori_dojo/internal/lib/logger/sl"
	"satori_dojo/internal/pocketbase"
	"satori_dojo/internal/repository"
	contact "satori_dojo/internal/services/contact_service"
	content "satori_dojo/internal/services/content_service"
	"satori_dojo/internal/services/maintenance"
	reactions "satori_dojo/internal/services/reaction_service"
	httprouters "satori_dojo/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
}

// New собирает приложение: клиент PocketBase, репозитории, сервисы и
// HTTP-сервер. Ссылки на соцсети загружаются один раз при старте и
// передаются в роутер явно.
func New(log *slog.Logger, cfg *config.Config) *App {
	client := pocketbase.NewClient(cfg.PocketBase.BaseURL, cfg.PocketBase.Timeout)
	repo := repository.NewRepository(client)

	contentService := content.NewContentService(log, repo.Content, cfg.Cache.TTL)
	reactionService := reactions.NewReactionService(log, repo.News)

	contactService, err := contact.NewContactService(log, cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.APIEndpoint)
	if err != nil {
		panic(err)
	}

	socialLinks := loadSocialLinks(context.Background(), log, contentService)

	registry := buildMaintenanceRegistry(log, cfg.Maintenance, contentService)
	contentService.AttachMaintenance(registry)

	routers := httprouters.NewRouter(log, contentService, reactionService, contactService, registry, socialLinks)

	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, routers, cfg.Contact.RatePerMinute)

	return &App{
		HTTPServer: server,
	}
}

// buildMaintenanceRegistry регистрирует секции сайта, которые умеют
// уходить в режим обслуживания и восстанавливаться по запросу.
func buildMaintenanceRegistry(log *slog.Logger, cfg config.MaintenanceConfig, contentService *content.ContentService) *maintenance.Registry {
	registry := maintenance.NewRegistry()

	registry.Register("schedule",
		maintenance.NewTracker(log, "schedule", cfg.MaxRetries, cfg.RetryDelay),
		func(ctx context.Context) (bool, error) {
			entries, err := contentService.Schedule(ctx)
			if err != nil {
				return false, err
			}
			return len(entries) > 0, nil
		},
	)

	registry.Register("news",
		maintenance.NewTracker(log, "news", cfg.MaxRetries, cfg.RetryDelay),
		func(ctx context.Context) (bool, error) {
			news, err := contentService.News(ctx)
			if err != nil {
				return false, err
			}
			return len(news) > 0, nil
		},
	)

	return registry
}

func loadSocialLinks(ctx context.Context, log *slog.Logger, contentService *content.ContentService) *models.SocialLinks {
	links, err := contentService.SocialLinks(ctx)
	if err != nil {
		log.Error("failed to load social links on startup", sl.Err(err))
		return nil
	}
	return links
}
