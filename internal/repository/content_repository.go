package repository

import (
	"context"
	"errors"
	"fmt"

	"satori_dojo/internal/domain/models"
	"satori_dojo/internal/pocketbase"
)

// Имена коллекций бекенда
const (
	collectionTrainers       = "trainers"
	collectionLocations      = "locations"
	collectionSchedule       = "schedule"
	collectionTrainingLevels = "training_levels"
	collectionNews           = "news"
	collectionNewsCategories = "news_categories"
	collectionReactionTypes  = "reaction_types"
	collectionPricingPlans   = "pricing_plans"
	collectionFAQ            = "faq"
	collectionFAQCategories  = "faq_categories"
	collectionColorThemes    = "color_themes"
	collectionHero           = "hero_content"
	collectionCTABanners     = "cta_banners"
	collectionPromoSections  = "promo_sections"
	collectionSocialLinks    = "social_links"
)

type contentRepository struct {
	client *pocketbase.Client
}

func NewContentRepository(client *pocketbase.Client) *contentRepository {
	return &contentRepository{client: client}
}

func (r *contentRepository) ListTrainers(ctx context.Context) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := r.client.List(ctx, collectionTrainers, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order,name",
	}, &trainers)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	return trainers, nil
}

func (r *contentRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := r.client.List(ctx, collectionLocations, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order,name",
		Expand: "color_theme",
	}, &locations)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (r *contentRepository) ListSchedule(ctx context.Context) ([]models.ScheduleEntry, error) {
	var entries []models.ScheduleEntry
	err := r.client.List(ctx, collectionSchedule, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "day,sort_order,start_time",
		Expand: "location,coaches,level,location.color_theme,level.color_theme",
	}, &entries)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return entries, nil
}

func (r *contentRepository) ListTrainingLevels(ctx context.Context) ([]models.TrainingLevel, error) {
	var levels []models.TrainingLevel
	err := r.client.List(ctx, collectionTrainingLevels, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
		Expand: "color_theme",
	}, &levels)
	if err != nil {
		return nil, fmt.Errorf("list training levels: %w", err)
	}
	return levels, nil
}

func (r *contentRepository) ListNews(ctx context.Context) ([]models.News, error) {
	var news []models.News
	err := r.client.List(ctx, collectionNews, pocketbase.ListParams{
		Filter: "is_published = true",
		Sort:   "-published_at,sort_order",
		Expand: "category,author,reactions,category.color_theme",
	}, &news)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	return news, nil
}

func (r *contentRepository) GetNewsBySlug(ctx context.Context, slug string) (*models.News, error) {
	var news []models.News
	err := r.client.List(ctx, collectionNews, pocketbase.ListParams{
		Filter:  fmt.Sprintf("is_published = true && slug = '%s'", pocketbase.EscapeFilterValue(slug)),
		Expand:  "category,author,reactions,category.color_theme",
		PerPage: 1,
	}, &news)
	if err != nil {
		return nil, fmt.Errorf("get news by slug: %w", err)
	}
	if len(news) == 0 {
		return nil, pocketbase.ErrNotFound
	}
	return &news[0], nil
}

func (r *contentRepository) ListNewsCategories(ctx context.Context) ([]models.NewsCategory, error) {
	var categories []models.NewsCategory
	err := r.client.List(ctx, collectionNewsCategories, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
		Expand: "color_theme",
	}, &categories)
	if err != nil {
		return nil, fmt.Errorf("list news categories: %w", err)
	}
	return categories, nil
}

func (r *contentRepository) ListReactionTypes(ctx context.Context) ([]models.ReactionType, error) {
	var reactions []models.ReactionType
	err := r.client.List(ctx, collectionReactionTypes, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
	}, &reactions)
	if err != nil {
		return nil, fmt.Errorf("list reaction types: %w", err)
	}
	return reactions, nil
}

func (r *contentRepository) ListPricingPlans(ctx context.Context) ([]models.PricingPlan, error) {
	var plans []models.PricingPlan
	err := r.client.List(ctx, collectionPricingPlans, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order,price",
	}, &plans)
	if err != nil {
		return nil, fmt.Errorf("list pricing plans: %w", err)
	}
	return plans, nil
}

func (r *contentRepository) ListFAQ(ctx context.Context) ([]models.FAQ, error) {
	var faq []models.FAQ
	err := r.client.List(ctx, collectionFAQ, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
		Expand: "category,category.color_theme",
	}, &faq)
	if err != nil {
		return nil, fmt.Errorf("list faq: %w", err)
	}
	return faq, nil
}

func (r *contentRepository) ListFAQCategories(ctx context.Context) ([]models.FAQCategory, error) {
	var categories []models.FAQCategory
	err := r.client.List(ctx, collectionFAQCategories, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
		Expand: "color_theme",
	}, &categories)
	if err != nil {
		return nil, fmt.Errorf("list faq categories: %w", err)
	}
	return categories, nil
}

func (r *contentRepository) ListColorThemes(ctx context.Context) ([]models.ColorTheme, error) {
	var themes []models.ColorTheme
	err := r.client.List(ctx, collectionColorThemes, pocketbase.ListParams{
		Filter: "is_active = true",
		Sort:   "sort_order",
	}, &themes)
	if err != nil {
		return nil, fmt.Errorf("list color themes: %w", err)
	}
	return themes, nil
}

// Секции вроде hero или промо-блока держат не больше одной активной
// записи, поэтому запрос ограничен лимитом 1 и отсутствие записи
// не считается ошибкой.
var singleRecordParams = pocketbase.ListParams{
	Filter:  "is_active = true",
	PerPage: 1,
}

func (r *contentRepository) GetHero(ctx context.Context) (*models.HeroContent, error) {
	var records []models.HeroContent
	if err := r.client.List(ctx, collectionHero, singleRecordParams, &records); err != nil {
		return nil, fmt.Errorf("get hero content: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *contentRepository) GetCTABanner(ctx context.Context) (*models.CTABanner, error) {
	var records []models.CTABanner
	if err := r.client.List(ctx, collectionCTABanners, singleRecordParams, &records); err != nil {
		return nil, fmt.Errorf("get cta banner: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *contentRepository) GetPromoSection(ctx context.Context) (*models.PromoSection, error) {
	var records []models.PromoSection
	if err := r.client.List(ctx, collectionPromoSections, singleRecordParams, &records); err != nil {
		return nil, fmt.Errorf("get promo section: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *contentRepository) GetSocialLinks(ctx context.Context) (*models.SocialLinks, error) {
	var records []models.SocialLinks
	if err := r.client.List(ctx, collectionSocialLinks, singleRecordParams, &records); err != nil {
		return nil, fmt.Errorf("get social links: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *contentRepository) GetNewsByID(ctx context.Context, id string) (*models.News, error) {
	var news models.News
	err := r.client.GetOne(ctx, collectionNews, id, "", &news)
	if err != nil {
		return nil, fmt.Errorf("get news by id: %w", err)
	}
	return &news, nil
}

func (r *contentRepository) UpdateReactionCounts(ctx context.Context, id string, counts map[string]int) error {
	err := r.client.Update(ctx, collectionNews, id, map[string]any{
		"reaction_counts": counts,
	})
	if err != nil {
		return fmt.Errorf("update reaction counts: %w", err)
	}
	return nil
}

// IsNotFound сообщает, что запись отсутствует (а не произошёл сбой запроса)
func IsNotFound(err error) bool {
	return errors.Is(err, pocketbase.ErrNotFound)
}
