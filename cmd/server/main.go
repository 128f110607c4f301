package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"marsad/backend/internal/cache"
	"marsad/backend/internal/config"
	"marsad/backend/internal/db"
	"marsad/backend/internal/handler"
	transport "marsad/backend/internal/http"
	"marsad/backend/internal/logger"
	"marsad/backend/internal/media"
	"marsad/backend/internal/repository"
	"marsad/backend/internal/service"
	"marsad/backend/internal/snowflake"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.ParseLevel(os.Getenv("MARSAD_LOG_LEVEL")))

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	translationRepo := repository.NewTranslationRepository(dbConn)
	caseRepo := repository.NewCaseRepository(dbConn)
	storyRepo := repository.NewStoryRepository(dbConn)
	testimonyRepo := repository.NewTestimonyRepository(dbConn)
	organizationRepo := repository.NewOrganizationRepository(dbConn)
	categoryRepo := repository.NewCategoryRepository(dbConn)
	homeSectionRepo := repository.NewHomeSectionRepository(dbConn)
	timelineRepo := repository.NewTimelineRepository(dbConn)

	payloadCache := cache.NewMemory()
	mediaResolver := media.NewResolver(cfg.MediaBaseURL)
	translations := service.NewTranslationStore(translationRepo)
	normalizer := service.NewNormalizer(translations, mediaResolver)

	homeService := service.NewHomeService(homeSectionRepo, caseRepo, storyRepo, testimonyRepo, timelineRepo, normalizer, payloadCache, cfg.CacheTTL, cfg.Fallbacks.Home)
	aboutService := service.NewAboutService(translations, timelineRepo, normalizer, payloadCache, cfg.CacheTTL, cfg.Fallbacks.About)
	aidService := service.NewAidService(organizationRepo, categoryRepo, normalizer, payloadCache, cfg.CacheTTL, cfg.Fallbacks.AidEfforts)
	testimonyService := service.NewTestimonyService(testimonyRepo, normalizer, payloadCache, cfg.CacheTTL, cfg.Fallbacks.Testimonials)
	organizationService := service.NewOrganizationService(organizationRepo, categoryRepo, normalizer, payloadCache, cfg.CacheTTL, cfg.Fallbacks.Organizations)
	overviewService := service.NewOverviewService(caseRepo, storyRepo, testimonyRepo, organizationRepo, timelineRepo, payloadCache, cfg.CacheTTL)

	feedHandler := handler.NewFeedHandler(homeService, aboutService, aidService, overviewService)
	testimonyHandler := handler.NewTestimonyHandler(testimonyService)
	organizationHandler := handler.NewOrganizationHandler(organizationService)

	router := transport.NewRouter(feedHandler, testimonyHandler, organizationHandler, transport.RouterConfig{
		RatePerSecond: cfg.RatePerSecond,
		RateBurst:     cfg.RateBurst,
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
