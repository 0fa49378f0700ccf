package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/pkg/db"
	kafkapkg "github.com/jakekohl/portfolio/pkg/kafka"
	"github.com/jakekohl/portfolio/pkg/log"
)

// Consumes stats ingestion messages and records them as audit rows
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	eventMd, _ := model.NewIngestionEvent(config, logger, mysql)
	if err := mysql.Migrate(eventMd); err != nil {
		logger.Error(ctx, "Failed to migrate database: %v", err)
		os.Exit(1)
	}

	consumer := kafkapkg.NewConsumer(config, logger, config.Kafka.Producer.TopicStats, "portfolio-stats-consumer")
	defer consumer.Close()

	consumer.RegisterHandler("github-stats", func(value []byte) error {
		var msg model.StatsIngestedMessage
		if err := json.Unmarshal(value, &msg); err != nil {
			return err
		}

		ingestedAt, err := time.Parse(time.RFC3339, msg.LastUpdated)
		if err != nil {
			ingestedAt = time.Now().UTC()
		}

		return eventMd.Create(msg.Year, msg.Username, msg.ContributionsCount, msg.TotalContributions, ingestedAt)
	})

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		logger.Info(ctx, "Received shutdown signal")
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil {
		logger.Error(ctx, "Consumer error: %v", err)
		os.Exit(1)
	}
}
