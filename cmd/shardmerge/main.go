// Command shardmerge runs one consolidation pass: it reads matching rows
// from every configured shard in parallel and writes them to the destination
// table in one transaction.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/getpup/shardmerge/config"
	"github.com/getpup/shardmerge/dest"
	"github.com/getpup/shardmerge/logging"
	"github.com/getpup/shardmerge/metrics"
	"github.com/getpup/shardmerge/migrate"
	"github.com/getpup/shardmerge/schema"
	"github.com/getpup/shardmerge/source"
	"github.com/getpup/shardmerge/writer"
)

func main() {
	configPath := flag.String("config", "shardmerge.toml", "path to the configuration file")
	createTable := flag.Bool("create-table", false, "create the destination table before running")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	// Set up graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, aborting run...")
		cancel()
	}()

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		metricsServer = metrics.NewServer(cfg.Metrics.Address)
		metricsServer.Start()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	db, err := sql.Open(cfg.Destination.Driver, cfg.Destination.DSN)
	if err != nil {
		log.Fatalf("Failed to open destination: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close destination: %v", err)
		}
	}()

	if *createTable {
		if err := schema.Apply(ctx, db, cfg.Destination.Driver, cfg.Destination.Table); err != nil {
			log.Fatalf("Failed to create destination table: %v", err)
		}
	}

	conn := dest.NewDB(db)

	if metricsServer != nil {
		if err := metricsServer.Err(); err != nil {
			log.Printf("Metrics server failed to start: %v", err)
		}
	}

	shards := cfg.ShardList()
	query := source.ReadQuery(shards[0].Driver, cfg.Query.Table, cfg.Query.Limit)

	migrator := migrate.New(migrate.Config{
		Shards:            shards,
		Query:             query,
		QueryArgs:         []any{cfg.Query.Status},
		Dest:              conn,
		Table:             cfg.Destination.Table,
		Placeholder:       writer.PlaceholderForDriver(cfg.Destination.Driver),
		MaxStatementBytes: cfg.Writer.MaxStatementBytes,
		MaxBatchRows:      cfg.Writer.MaxBatchRows,
		Logger:            logger,
	})

	summary, err := migrator.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Fatalf("Run aborted: %v", err)
		}
		log.Fatalf("Run failed: %v", err)
	}

	log.Printf("Run %s complete: %d records from %d shards in %d batches (%s)",
		summary.RunID, summary.Records, summary.Shards, summary.Batches, summary.Elapsed)
}
