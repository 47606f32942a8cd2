package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/jobhunt/backend/internal/api"
	"github.com/jobhunt/backend/internal/api/handlers"
	"github.com/jobhunt/backend/internal/config"
	"github.com/jobhunt/backend/internal/events"
	"github.com/jobhunt/backend/internal/logger"
	"github.com/jobhunt/backend/internal/metrics"
	"github.com/jobhunt/backend/internal/repositories"
	"github.com/jobhunt/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

func subscribeMetrics(bus EventBus.Bus) {
	_ = bus.Subscribe(events.VacancyCreatedTopic, func(event events.VacancyCreated) {
		metrics.VacanciesCreatedCounter.Inc()
		log.Infof("vacancy created, id: %v slug: %v", event.VacancyID, event.Slug)
	})
	_ = bus.Subscribe(events.VacancyLikedTopic, func(event events.VacancyLiked) {
		metrics.LikesCounter.Inc()
	})
}

func main() {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Get()

	metrics.Register()
	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	dbCtx, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer func() { _ = dbCtx.Close() }()

	if err = dbCtx.Migrate(); err != nil {
		log.Fatalf("can't migrate db: %v", err)
	}

	vacancies := repositories.NewVacanciesRepository(dbCtx.DB)
	skills := repositories.NewSkillsRepository(dbCtx.DB)
	cachedSkills := repositories.NewCachedSkills(skills)
	users := repositories.NewUsersRepository(dbCtx.DB)

	bus := EventBus.New()
	subscribeMetrics(bus)

	vacancyService := services.NewVacancyService(vacancies, cachedSkills, bus, cfg.API.PageSize)
	skillService := services.NewSkillService(skills, cfg.API.PageSize)
	reportService := services.NewReportService(users, cfg.API.PageSize)
	authService := services.NewAuthService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	statsCollector, err := services.NewStatsCollector(vacancies, skills, users)
	if err != nil {
		log.Fatalf("can't start stats collector: %v", err)
	}
	defer statsCollector.Stop()

	router := api.NewRouter(api.Dependencies{
		JWTSecret:      []byte(cfg.Auth.JWTSecret),
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		AuthHandler:    handlers.NewAuthHandler(authService),
		VacancyHandler: handlers.NewVacancyHandler(vacancyService),
		SkillHandler:   handlers.NewSkillHandler(skillService),
		ReportHandler:  handlers.NewReportHandler(reportService),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
	}

	go func() {
		log.Infof("listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}
