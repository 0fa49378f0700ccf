package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/internal/api"
	githubapi "github.com/jakekohl/portfolio/internal/github_api"
	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/internal/stats"
	"github.com/jakekohl/portfolio/pkg/db"
	kafkapkg "github.com/jakekohl/portfolio/pkg/kafka"
	"github.com/jakekohl/portfolio/pkg/log"
)

func main() {
	ctx := context.Background()

	loader, _ := cfg.NewViperLoader()
	config, err := loader.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := log.NewLogger(config.Log.Driver, config.Log.Level)
	if err != nil {
		os.Stderr.WriteString("failed to create logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	caller := githubapi.NewCaller(logger, config)
	tracker := stats.NewFreshnessTracker()

	var store stats.Store
	portfolio := &api.PortfolioData{}

	switch config.Storage.Driver {
	case "memory":
		logger.Warn(ctx, "Using in-memory storage, data will not survive restarts")
		store = stats.NewMemoryStore()
	default:
		mysql, _ := db.NewMysql(config)
		if err := mysql.Ping(); err != nil {
			logger.Error(ctx, "Cannot connect to database: %v", err)
			os.Exit(1)
		}
		defer mysql.Close()

		statsMd, _ := model.NewStatsYear(config, logger, mysql)
		eventMd, _ := model.NewIngestionEvent(config, logger, mysql)
		profileMd, _ := model.NewProfile(config, logger, mysql)
		projectMd, _ := model.NewProject(config, logger, mysql)
		roleMd, _ := model.NewRole(config, logger, mysql)
		contactMd, _ := model.NewContact(config, logger, mysql)
		specialtyMd, _ := model.NewSpecialty(config, logger, mysql)

		if err := mysql.Migrate(statsMd, eventMd, profileMd, projectMd, roleMd, contactMd, specialtyMd); err != nil {
			logger.Error(ctx, "Failed to migrate database: %v", err)
			os.Exit(1)
		}

		mysqlStore := stats.NewMysqlStore(statsMd)
		store = mysqlStore

		// Prime the freshness tracker so the ingestion cooldown survives
		// restarts
		if last, err := mysqlStore.LastUpdated(); err == nil && !last.IsZero() {
			tracker.RecordSuccess(last)
		}

		portfolio = &api.PortfolioData{
			ProfileMd:   profileMd,
			ProjectMd:   projectMd,
			RoleMd:      roleMd,
			ContactMd:   contactMd,
			SpecialtyMd: specialtyMd,
		}
	}

	ingester, err := stats.NewIngester(logger, config, store, caller, tracker)
	if err != nil {
		logger.Error(ctx, "Failed to create ingester: %v", err)
		os.Exit(1)
	}

	if config.Kafka.Enabled {
		producer := kafkapkg.NewProducer(config, logger, config.Kafka.Producer.TopicStats)
		defer producer.Close()
		ingester = ingester.WithProducer(producer)
	}

	query, _ := stats.NewQueryService(logger, store)
	handler, err := api.NewHandler(logger, config, query, ingester, portfolio)
	if err != nil {
		logger.Error(ctx, "Failed to create handler: %v", err)
		os.Exit(1)
	}

	server, _ := api.NewServer(logger, config, handler)

	go func() {
		if err := server.Start(); err != nil {
			logger.Error(ctx, "Server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info(ctx, "Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error(ctx, "Graceful shutdown failed: %v", err)
	}
}
