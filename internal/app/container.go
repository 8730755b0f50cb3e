package app

import (
	"context"
	"log"
	"os"
	"time"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/database/migration"
	dbpostgres "job-board/internal/database/postgres"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/repository"
	"job-board/internal/usecase"
	"job-board/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	JobsHandler *handler.JobsHandler
	WSHandler   *ws.Handler
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: cfg.Database.MigrationsDir}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	listingCache := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	ws.SetDefaultHub(hub)
	go hub.Run()

	companies := repository.NewPostgresCompanyRepository()
	jobs := repository.NewPostgresJobRepository(db)

	notifier := ws.Notifier{}
	listUC := usecase.NewJobListUsecase(jobs, listingCache, logger)
	createUC := usecase.NewJobCreateUsecase(db, companies, jobs, listingCache, notifier, logger)
	statusUC := usecase.NewJobStatusUsecase(jobs, listingCache, notifier, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Cache:       listingCache,
		Hub:         hub,
		JobsHandler: handler.NewJobsHandler(listUC, createUC, statusUC),
		WSHandler:   ws.NewHandler(hub, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
