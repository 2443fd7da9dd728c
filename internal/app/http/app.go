package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"satori_dojo/internal/metrics"
	custommw "satori_dojo/internal/middleware"
	httprouters "satori_dojo/internal/transport/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log            *slog.Logger
	e              *echo.Echo
	routers        *httprouters.Routers
	host           string
	port           string
	contactLimiter *rate.Limiter
}

func New(log *slog.Logger, host, port string, routers *httprouters.Routers, contactRatePerMinute int) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(custommw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	if contactRatePerMinute <= 0 {
		contactRatePerMinute = 10
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(contactRatePerMinute)), contactRatePerMinute)

	return &Server{
		log:            log,
		e:              e,
		routers:        routers,
		host:           host,
		port:           port,
		contactLimiter: limiter,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := s.e.Group("/api/v1")
	{
		api.GET("/trainers", s.routers.GetTrainers)
		api.GET("/locations", s.routers.GetLocations)
		api.GET("/schedule", s.routers.GetSchedule)
		api.GET("/levels", s.routers.GetTrainingLevels)
		api.GET("/pricing", s.routers.GetPricing)
		api.GET("/faq", s.routers.GetFAQ)
		api.GET("/hero", s.routers.GetHero)
		api.GET("/cta", s.routers.GetCTABanner)
		api.GET("/promo", s.routers.GetPromoSection)
		api.GET("/social", s.routers.GetSocialLinks)

		newsGroup := api.Group("/news")
		{
			newsGroup.GET("", s.routers.GetNews)
			newsGroup.GET("/:slug", s.routers.GetNewsBySlug)
			newsGroup.POST("/:id/reactions", s.routers.ToggleReaction)
		}

		maintenanceGroup := api.Group("/maintenance")
		{
			maintenanceGroup.GET("/:section", s.routers.GetMaintenanceStatus)
			maintenanceGroup.POST("/:section/retry", s.routers.RetryMaintenance)
		}

		api.POST("/contact", s.routers.SendContactForm, custommw.RateLimit(s.contactLimiter))
	}
}
