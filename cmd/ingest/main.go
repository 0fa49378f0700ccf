package main

import (
	"context"
	"flag"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jakekohl/portfolio/cfg"
	githubapi "github.com/jakekohl/portfolio/internal/github_api"
	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/internal/stats"
	"github.com/jakekohl/portfolio/pkg/db"
	kafkapkg "github.com/jakekohl/portfolio/pkg/kafka"
	"github.com/jakekohl/portfolio/pkg/log"
)

// One-shot ingestion of GitHub contribution stats, suitable for cron
func main() {
	year := flag.Int("year", 0, "contribution year to ingest, 0 means current year")
	flag.Parse()

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

	mysql, _ := db.NewMysql(config)
	if err := mysql.Ping(); err != nil {
		logger.Error(ctx, "Cannot connect to database: %v", err)
		os.Exit(1)
	}
	defer mysql.Close()

	statsMd, _ := model.NewStatsYear(config, logger, mysql)
	if err := mysql.Migrate(statsMd); err != nil {
		logger.Error(ctx, "Failed to migrate database: %v", err)
		os.Exit(1)
	}

	store := stats.NewMysqlStore(statsMd)
	tracker := stats.NewFreshnessTracker()
	if last, err := store.LastUpdated(); err == nil && !last.IsZero() {
		tracker.RecordSuccess(last)
	}

	caller := githubapi.NewCaller(logger, config)
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

	result, err := ingester.Ingest(ctx, config.GithubStats.Secret, *year)
	if err != nil {
		logger.Error(ctx, "Ingestion failed: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Ingested %d contributions for year %d, total %d", result.ContributionsCount, result.Year, result.TotalContributions)
}
