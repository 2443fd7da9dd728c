package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"satori_dojo/internal/domain/models"
	"satori_dojo/internal/lib/logger/sl"
	"satori_dojo/internal/metrics"
	services "satori_dojo/internal/services/contact_service"
	"satori_dojo/internal/services/maintenance"
	reactions "satori_dojo/internal/services/reaction_service"
	"satori_dojo/internal/transport/http/dto/request"
	"satori_dojo/internal/transport/http/dto/response"
	"satori_dojo/internal/viewmodel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContentProvider interface {
	Trainers(ctx context.Context) ([]models.Trainer, error)
	Locations(ctx context.Context) ([]models.Location, error)
	Schedule(ctx context.Context) ([]models.ScheduleEntry, error)
	TrainingLevels(ctx context.Context) ([]models.TrainingLevel, error)
	News(ctx context.Context) ([]models.News, error)
	NewsBySlug(ctx context.Context, slug string) (*models.News, error)
	PricingPlans(ctx context.Context) ([]models.PricingPlan, error)
	FAQ(ctx context.Context) ([]models.FAQ, error)
	ColorThemes(ctx context.Context) ([]models.ColorTheme, error)
	Hero(ctx context.Context) (*models.HeroContent, error)
	CTABanner(ctx context.Context) (*models.CTABanner, error)
	PromoSection(ctx context.Context) (*models.PromoSection, error)
}

type ReactionToggler interface {
	Toggle(ctx context.Context, newsID, reaction string, activate bool) (map[string]int, error)
}

type ContactSender interface {
	Send(ctx context.Context, req services.ContactRequest) error
}

type MaintenanceRegistry interface {
	Status(name string) (maintenance.Status, bool)
	Retry(ctx context.Context, name string) (maintenance.Status, bool)
}

type Routers struct {
	log            *slog.Logger
	ContentService ContentProvider
	ReactionToggle ReactionToggler
	ContactService ContactSender
	Maintenance    MaintenanceRegistry
	SocialLinks    *models.SocialLinks
}

func NewRouter(log *slog.Logger, contentService ContentProvider, reactionToggle ReactionToggler, contactService ContactSender, registry MaintenanceRegistry, socialLinks *models.SocialLinks) *Routers {
	return &Routers{
		log:            log,
		ContentService: contentService,
		ReactionToggle: reactionToggle,
		ContactService: contactService,
		Maintenance:    registry,
		SocialLinks:    socialLinks,
	}
}

// GetTrainers godoc
// @Summary Список тренеров
// @Description Возвращает активных тренеров в порядке сортировки
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Trainer}
// @Router /api/v1/trainers [get]
func (r *Routers) GetTrainers(c echo.Context) error {
	trainers, err := r.ContentService.Trainers(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(trainers))
}

// GetLocations godoc
// @Summary Список залов
// @Description Возвращает активные залы школы
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Location}
// @Router /api/v1/locations [get]
func (r *Routers) GetLocations(c echo.Context) error {
	locations, err := r.ContentService.Locations(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(locations))
}

// GetSchedule godoc
// @Summary Расписание занятий
// @Description Возвращает занятия, сгруппированные по дням недели,
// с разрешёнными именами залов, уровней и тренеров
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]viewmodel.DaySchedule}
// @Router /api/v1/schedule [get]
func (r *Routers) GetSchedule(c echo.Context) error {
	ctx := c.Request().Context()

	entries, err := r.ContentService.Schedule(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	themes, err := r.ContentService.ColorThemes(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(viewmodel.BuildSchedule(entries, themes)))
}

// GetTrainingLevels godoc
// @Summary Уровни подготовки
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]models.TrainingLevel}
// @Router /api/v1/levels [get]
func (r *Routers) GetTrainingLevels(c echo.Context) error {
	levels, err := r.ContentService.TrainingLevels(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(levels))
}

// GetNews godoc
// @Summary Список новостей
// @Description Возвращает опубликованные новости без полного содержимого
// @Tags Новости
// @Produce json
// @Success 200 {object} response.Response{data=[]viewmodel.NewsView}
// @Router /api/v1/news [get]
func (r *Routers) GetNews(c echo.Context) error {
	ctx := c.Request().Context()

	news, err := r.ContentService.News(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	themes, err := r.ContentService.ColorThemes(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(viewmodel.BuildNewsList(news, themes)))
}

// GetNewsBySlug godoc
// @Summary Новость по slug
// @Description Возвращает новость с очищенным содержимым и счётчиками реакций
// @Tags Новости
// @Produce json
// @Param slug path string true "Slug новости"
// @Success 200 {object} response.Response{data=viewmodel.NewsView}
// @Failure 404 {object} response.ErrorResponse "Новость не найдена"
// @Router /api/v1/news/{slug} [get]
func (r *Routers) GetNewsBySlug(c echo.Context) error {
	const op = "http.routers.GetNewsBySlug"

	log := r.log.With(
		slog.String("op", op),
	)

	ctx := c.Request().Context()
	slug := c.Param("slug")

	news, err := r.ContentService.NewsBySlug(ctx, slug)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if news == nil {
		log.Warn("news not found", slog.String("slug", slug))
		return c.JSON(http.StatusNotFound, response.ErrNewsNotFound)
	}

	themes, err := r.ContentService.ColorThemes(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(viewmodel.BuildNewsView(*news, themes, true)))
}

// ToggleReaction godoc
// @Summary Переключить реакцию на новости
// @Description Увеличивает или уменьшает счётчик реакции. Повторный запрос
// для той же пары (новость, реакция) до завершения предыдущего отклоняется.
// @Tags Новости
// @Accept json
// @Produce json
// @Param id path string true "ID новости"
// @Param request body request.ToggleReactionRequest true "Реакция и направление"
// @Success 200 {object} response.Response{data=map[string]int} "Счётчики после фиксации"
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} response.ErrorResponse "Обновление уже выполняется"
// @Failure 500 {object} response.ErrorResponse "Ошибка записи, изменение откатано"
// @Router /api/v1/news/{id}/reactions [post]
func (r *Routers) ToggleReaction(c echo.Context) error {
	const op = "http.routers.ToggleReaction"

	log := r.log.With(
		slog.String("op", op),
		slog.String("news_id", c.Param("id")),
	)

	var req request.ToggleReactionRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		resp := response.ErrValidationFailed
		resp.Details = err.Error()
		return c.JSON(http.StatusBadRequest, resp)
	}

	counts, err := r.ReactionToggle.Toggle(c.Request().Context(), c.Param("id"), req.Reaction, req.Active)
	if err != nil {
		if errors.Is(err, reactions.ErrReactionInFlight) {
			return c.JSON(http.StatusConflict, response.ErrReactionConflict)
		}

		log.Error("failed to toggle reaction", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("reaction_update_failed", err.Error()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(counts))
}

// GetPricing godoc
// @Summary Тарифы
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]models.PricingPlan}
// @Router /api/v1/pricing [get]
func (r *Routers) GetPricing(c echo.Context) error {
	plans, err := r.ContentService.PricingPlans(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(plans))
}

// GetFAQ godoc
// @Summary Вопросы и ответы
// @Description Возвращает вопросы с очищенными ответами и стилями категорий
// @Tags Контент
// @Produce json
// @Success 200 {object} response.Response{data=[]viewmodel.FAQView}
// @Router /api/v1/faq [get]
func (r *Routers) GetFAQ(c echo.Context) error {
	ctx := c.Request().Context()

	faq, err := r.ContentService.FAQ(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	themes, err := r.ContentService.ColorThemes(ctx)
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(viewmodel.BuildFAQList(faq, themes)))
}

func (r *Routers) GetHero(c echo.Context) error {
	hero, err := r.ContentService.Hero(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(hero))
}

func (r *Routers) GetCTABanner(c echo.Context) error {
	banner, err := r.ContentService.CTABanner(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(banner))
}

func (r *Routers) GetPromoSection(c echo.Context) error {
	promo, err := r.ContentService.PromoSection(c.Request().Context())
	if err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(promo))
}

// GetSocialLinks отдаёт ссылки, загруженные один раз при старте приложения
func (r *Routers) GetSocialLinks(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.SocialLinks))
}

// GetMaintenanceStatus godoc
// @Summary Состояние секции сайта
// @Description Возвращает, показана ли заглушка обслуживания и остались
// ли попытки повтора
// @Tags Служебное
// @Produce json
// @Param section path string true "Имя секции"
// @Success 200 {object} response.Response{data=maintenance.Status}
// @Failure 404 {object} response.ErrorResponse "Секция не зарегистрирована"
// @Router /api/v1/maintenance/{section} [get]
func (r *Routers) GetMaintenanceStatus(c echo.Context) error {
	status, ok := r.Maintenance.Status(c.Param("section"))
	if !ok {
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("unknown_section", c.Param("section")))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(status))
}

// RetryMaintenance godoc
// @Summary Повторить загрузку секции
// @Description Запускает одну попытку восстановления недоступной секции.
// После исчерпания лимита попыток вызов ничего не делает.
// @Tags Служебное
// @Produce json
// @Param section path string true "Имя секции"
// @Success 200 {object} response.Response{data=maintenance.Status}
// @Failure 404 {object} response.ErrorResponse "Секция не зарегистрирована"
// @Router /api/v1/maintenance/{section}/retry [post]
func (r *Routers) RetryMaintenance(c echo.Context) error {
	const op = "http.routers.RetryMaintenance"

	log := r.log.With(
		slog.String("op", op),
		slog.String("section", c.Param("section")),
	)

	status, ok := r.Maintenance.Retry(c.Request().Context(), c.Param("section"))
	if !ok {
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("unknown_section", c.Param("section")))
	}

	log.Info("maintenance retry executed",
		slog.Bool("unavailable", status.Unavailable),
		slog.Int("retry_count", status.RetryCount),
	)

	return c.JSON(http.StatusOK, response.SuccessResponse(status))
}

// SendContactForm godoc
// @Summary Отправить заявку с формы обратной связи
// @Description Пересылает заявку в Telegram-чат школы
// @Tags Форма связи
// @Accept json
// @Produce json
// @Param request body request.ContactFormRequest true "Данные заявки"
// @Success 200 {object} map[string]bool "Заявка отправлена" example({"success": true})
// @Failure 400 {object} response.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} response.ErrorResponse "Не удалось переслать заявку"
// @Router /api/v1/contact [post]
func (r *Routers) SendContactForm(c echo.Context) error {
	const op = "http.routers.SendContactForm"

	requestID := uuid.New().String()

	log := r.log.With(
		slog.String("op", op),
		slog.String("request_id", requestID),
	)

	var req request.ContactFormRequest

	if err := c.Bind(&req); err != nil {
		log.Error("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		resp := response.ErrValidationFailed
		resp.Details = err.Error()
		return c.JSON(http.StatusBadRequest, resp)
	}

	err := r.ContactService.Send(c.Request().Context(), services.ContactRequest{
		Name:           req.Name,
		Phone:          req.Phone,
		ContactMethods: req.ContactMethods,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		metrics.ContactRequestsTotal.WithLabelValues("error").Inc()
		log.Error("failed to forward contact request", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrContactForwardFailed)
	}

	metrics.ContactRequestsTotal.WithLabelValues("success").Inc()
	log.Info("contact request forwarded", slog.String("name", req.Name))

	return c.JSON(http.StatusOK, map[string]bool{
		"success": true,
	})
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags Служебное
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "satori-dojo-content",
	})
}
