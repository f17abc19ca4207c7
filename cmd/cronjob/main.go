package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"condoreserve-backend/internal/config"
	"condoreserve-backend/internal/jobs"
	"condoreserve-backend/internal/logger"
	"condoreserve-backend/internal/repository/postgres"
	"condoreserve-backend/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a single job by name and exit (auto-complete)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CondoReserve cron runner...")

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	jobRunner := jobs.NewJobRunner(db, store, cfg)

	if *runOnce != "" {
		if err := runSingleJob(jobRunner, *runOnce); err != nil {
			logger.Error("Job failed", "job", *runOnce, "error", err)
			os.Exit(1)
		}
		logger.Info("Job completed", "job", *runOnce)
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	sched.Stop()
	logger.Info("Cron runner stopped. Goodbye!")
}

func runSingleJob(runner *jobs.JobRunner, name string) error {
	switch name {
	case "auto-complete":
		runner.AutoCompleteOverdueReservations()
		return nil
	default:
		return fmt.Errorf("unknown job %q", name)
	}
}
