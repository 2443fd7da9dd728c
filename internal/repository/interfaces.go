package repository

import (
	"context"

	"satori_dojo/internal/domain/models"
)

// ContentRepository читает контентные коллекции из бекенда.
// Каждый метод применяет статический фильтр, сортировку и expand,
// единые для соответствующей секции сайта. Ошибки возвращаются как есть,
// нормализацией занимается сервисный слой.
type ContentRepository interface {
	ListTrainers(ctx context.Context) ([]models.Trainer, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListSchedule(ctx context.Context) ([]models.ScheduleEntry, error)
	ListTrainingLevels(ctx context.Context) ([]models.TrainingLevel, error)
	ListNews(ctx context.Context) ([]models.News, error)
	GetNewsBySlug(ctx context.Context, slug string) (*models.News, error)
	ListNewsCategories(ctx context.Context) ([]models.NewsCategory, error)
	ListReactionTypes(ctx context.Context) ([]models.ReactionType, error)
	ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error)
	ListFAQ(ctx context.Context) ([]models.FAQ, error)
	ListFAQCategories(ctx context.Context) ([]models.FAQCategory, error)
	ListColorThemes(ctx context.Context) ([]models.ColorTheme, error)
	GetHero(ctx context.Context) (*models.HeroContent, error)
	GetCTABanner(ctx context.Context) (*models.CTABanner, error)
	GetPromoSection(ctx context.Context) (*models.PromoSection, error)
	GetSocialLinks(ctx context.Context) (*models.SocialLinks, error)
}

// NewsRepository — операции над одной новостью для обновления счётчиков
// реакций (единственное изменяемое поле, которое трогает этот сервис).
type NewsRepository interface {
	GetNewsByID(ctx context.Context, id string) (*models.News, error)
	UpdateReactionCounts(ctx context.Context, id string, counts map[string]int) error
}
