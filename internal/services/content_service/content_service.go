package services

import (
	"context"
	"log/slog"
	"time"

	"satori_dojo/internal/domain/models"
	"satori_dojo/internal/lib/logger/sl"
	"satori_dojo/internal/pocketbase"
	"satori_dojo/internal/repository"

	gocache "github.com/patrickmn/go-cache"
)

// Ключи кеша по коллекциям
const (
	cacheKeyTrainers       = "trainers"
	cacheKeyLocations      = "locations"
	cacheKeySchedule       = "schedule"
	cacheKeyTrainingLevels = "training_levels"
	cacheKeyNews           = "news"
	cacheKeyNewsCategories = "news_categories"
	cacheKeyReactionTypes  = "reaction_types"
	cacheKeyPricingPlans   = "pricing_plans"
	cacheKeyFAQ            = "faq"
	cacheKeyFAQCategories  = "faq_categories"
	cacheKeyColorThemes    = "color_themes"
)

// Секции, уходящие в режим обслуживания при сбое загрузки
const (
	sectionSchedule = "schedule"
	sectionNews     = "news"
)

// SectionNotifier получает сигнал, что секция не смогла загрузиться
type SectionNotifier interface {
	MarkUnavailable(name string) bool
}

// ContentService отдаёт контент сайта. Любой сбой чтения, кроме отмены
// запроса, нормализуется в пустой результат: секция сама решает,
// показывать пустое состояние или заглушку обслуживания.
// Отмена возвращается вызывающему нетронутой.
type ContentService struct {
	log      *slog.Logger
	repo     repository.ContentRepository
	cache    *gocache.Cache
	sections SectionNotifier
}

func NewContentService(log *slog.Logger, repo repository.ContentRepository, cacheTTL time.Duration) *ContentService {
	return &ContentService{
		log:   log,
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// AttachMaintenance подключает трекер обслуживания; реестр строится
// поверх сервиса, поэтому связь устанавливается после конструктора.
func (s *ContentService) AttachMaintenance(sections SectionNotifier) {
	s.sections = sections
}

func (s *ContentService) markUnavailable(section string) {
	if s.sections != nil {
		s.sections.MarkUnavailable(section)
	}
}

func (s *ContentService) Trainers(ctx context.Context) ([]models.Trainer, error) {
	const op = "content_service.Trainers"

	if cached, ok := s.cache.Get(cacheKeyTrainers); ok {
		return cached.([]models.Trainer), nil
	}

	trainers, err := s.repo.ListTrainers(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch trainers", slog.String("op", op), sl.Err(err))
		return []models.Trainer{}, nil
	}

	s.cache.SetDefault(cacheKeyTrainers, trainers)
	return trainers, nil
}

func (s *ContentService) Locations(ctx context.Context) ([]models.Location, error) {
	const op = "content_service.Locations"

	if cached, ok := s.cache.Get(cacheKeyLocations); ok {
		return cached.([]models.Location), nil
	}

	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch locations", slog.String("op", op), sl.Err(err))
		return []models.Location{}, nil
	}

	s.cache.SetDefault(cacheKeyLocations, locations)
	return locations, nil
}

func (s *ContentService) Schedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	const op = "content_service.Schedule"

	if cached, ok := s.cache.Get(cacheKeySchedule); ok {
		return cached.([]models.ScheduleEntry), nil
	}

	entries, err := s.repo.ListSchedule(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch schedule", slog.String("op", op), sl.Err(err))
		s.markUnavailable(sectionSchedule)
		return []models.ScheduleEntry{}, nil
	}

	s.cache.SetDefault(cacheKeySchedule, entries)
	return entries, nil
}

func (s *ContentService) TrainingLevels(ctx context.Context) ([]models.TrainingLevel, error) {
	const op = "content_service.TrainingLevels"

	if cached, ok := s.cache.Get(cacheKeyTrainingLevels); ok {
		return cached.([]models.TrainingLevel), nil
	}

	levels, err := s.repo.ListTrainingLevels(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch training levels", slog.String("op", op), sl.Err(err))
		return []models.TrainingLevel{}, nil
	}

	s.cache.SetDefault(cacheKeyTrainingLevels, levels)
	return levels, nil
}

func (s *ContentService) News(ctx context.Context) ([]models.News, error) {
	const op = "content_service.News"

	if cached, ok := s.cache.Get(cacheKeyNews); ok {
		return cached.([]models.News), nil
	}

	news, err := s.repo.ListNews(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch news", slog.String("op", op), sl.Err(err))
		s.markUnavailable(sectionNews)
		return []models.News{}, nil
	}

	s.cache.SetDefault(cacheKeyNews, news)
	return news, nil
}

// NewsBySlug возвращает (nil, nil), когда новость не найдена или
// чтение сорвалось: обе ситуации для секции выглядят как "нечего показать".
func (s *ContentService) NewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	const op = "content_service.NewsBySlug"

	news, err := s.repo.GetNewsBySlug(ctx, slug)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		if repository.IsNotFound(err) {
			return nil, nil
		}
		s.log.Error("failed to fetch news by slug",
			slog.String("op", op), slog.String("slug", slug), sl.Err(err))
		return nil, nil
	}

	return news, nil
}

func (s *ContentService) NewsCategories(ctx context.Context) ([]models.NewsCategory, error) {
	const op = "content_service.NewsCategories"

	if cached, ok := s.cache.Get(cacheKeyNewsCategories); ok {
		return cached.([]models.NewsCategory), nil
	}

	categories, err := s.repo.ListNewsCategories(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch news categories", slog.String("op", op), sl.Err(err))
		return []models.NewsCategory{}, nil
	}

	s.cache.SetDefault(cacheKeyNewsCategories, categories)
	return categories, nil
}

func (s *ContentService) ReactionTypes(ctx context.Context) ([]models.ReactionType, error) {
	const op = "content_service.ReactionTypes"

	if cached, ok := s.cache.Get(cacheKeyReactionTypes); ok {
		return cached.([]models.ReactionType), nil
	}

	reactions, err := s.repo.ListReactionTypes(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch reaction types", slog.String("op", op), sl.Err(err))
		return []models.ReactionType{}, nil
	}

	s.cache.SetDefault(cacheKeyReactionTypes, reactions)
	return reactions, nil
}

func (s *ContentService) PricingPlans(ctx context.Context) ([]models.PricingPlan, error) {
	const op = "content_service.PricingPlans"

	if cached, ok := s.cache.Get(cacheKeyPricingPlans); ok {
		return cached.([]models.PricingPlan), nil
	}

	plans, err := s.repo.ListPricingPlans(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch pricing plans", slog.String("op", op), sl.Err(err))
		return []models.PricingPlan{}, nil
	}

	s.cache.SetDefault(cacheKeyPricingPlans, plans)
	return plans, nil
}

func (s *ContentService) FAQ(ctx context.Context) ([]models.FAQ, error) {
	const op = "content_service.FAQ"

	if cached, ok := s.cache.Get(cacheKeyFAQ); ok {
		return cached.([]models.FAQ), nil
	}

	faq, err := s.repo.ListFAQ(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch faq", slog.String("op", op), sl.Err(err))
		return []models.FAQ{}, nil
	}

	s.cache.SetDefault(cacheKeyFAQ, faq)
	return faq, nil
}

func (s *ContentService) FAQCategories(ctx context.Context) ([]models.FAQCategory, error) {
	const op = "content_service.FAQCategories"

	if cached, ok := s.cache.Get(cacheKeyFAQCategories); ok {
		return cached.([]models.FAQCategory), nil
	}

	categories, err := s.repo.ListFAQCategories(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch faq categories", slog.String("op", op), sl.Err(err))
		return []models.FAQCategory{}, nil
	}

	s.cache.SetDefault(cacheKeyFAQCategories, categories)
	return categories, nil
}

func (s *ContentService) ColorThemes(ctx context.Context) ([]models.ColorTheme, error) {
	const op = "content_service.ColorThemes"

	if cached, ok := s.cache.Get(cacheKeyColorThemes); ok {
		return cached.([]models.ColorTheme), nil
	}

	themes, err := s.repo.ListColorThemes(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch color themes", slog.String("op", op), sl.Err(err))
		return []models.ColorTheme{}, nil
	}

	s.cache.SetDefault(cacheKeyColorThemes, themes)
	return themes, nil
}

func (s *ContentService) Hero(ctx context.Context) (*models.HeroContent, error) {
	const op = "content_service.Hero"

	hero, err := s.repo.GetHero(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch hero content", slog.String("op", op), sl.Err(err))
		return nil, nil
	}

	return hero, nil
}

func (s *ContentService) CTABanner(ctx context.Context) (*models.CTABanner, error) {
	const op = "content_service.CTABanner"

	banner, err := s.repo.GetCTABanner(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch cta banner", slog.String("op", op), sl.Err(err))
		return nil, nil
	}

	return banner, nil
}

func (s *ContentService) PromoSection(ctx context.Context) (*models.PromoSection, error) {
	const op = "content_service.PromoSection"

	promo, err := s.repo.GetPromoSection(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch promo section", slog.String("op", op), sl.Err(err))
		return nil, nil
	}

	return promo, nil
}

func (s *ContentService) SocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	const op = "content_service.SocialLinks"

	links, err := s.repo.GetSocialLinks(ctx)
	if err != nil {
		if pocketbase.IsCancellation(err) {
			return nil, err
		}
		s.log.Error("failed to fetch social links", slog.String("op", op), sl.Err(err))
		return nil, nil
	}

	return links, nil
}
