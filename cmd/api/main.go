package main

import (
	"context"
	"log"

	"github.com/atogato/portfolio-backend/config"
	"github.com/atogato/portfolio-backend/internal/auth"
	"github.com/atogato/portfolio-backend/internal/bootstrap"
	"github.com/atogato/portfolio-backend/internal/jobs"
	"github.com/atogato/portfolio-backend/internal/projects/repository"
	"github.com/atogato/portfolio-backend/internal/storage/s3"

	fbauth "firebase.google.com/go/v4/auth"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Printf("redis unavailable, likes disabled: %v", err)
		rdb = nil
	}

	uploader, err := s3.NewUploader(ctx, &cfg.S3)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	var authClient *fbauth.Client
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err = auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("Firebase not configured, using development principal")
	}

	sched := jobs.NewScheduler(repository.NewRepo(pool))
	sched.Start()
	defer sched.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     cfg.App.Version,
		DB:          pool,
		Redis:       rdb,
		AuthClient:  authClient,
		Attachments: uploader,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
