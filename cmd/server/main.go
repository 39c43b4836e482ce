package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/configs"
	httpdelivery "github.com/Arjun-1431/bharttapp-addproduct/internal/delivery/http"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/delivery/kafka"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/media"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/repository"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/repository/mongodb"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/service"
)

// @title standee order service
// @version 1.0
// @description Collects standee design order requests, uploads the attached images to Cloudinary and stores order documents in MongoDB. Exposes the admin listing used for review and download.

// @host localhost:8081
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:        cfg.MongoURI,
		Database:   cfg.MongoDB,
		Collection: cfg.MongoCollection,
	})
	if err != nil {
		logrus.Fatalf("mongo connect: %s", err)
	}
	defer func() {
		if derr := db.Close(context.Background()); derr != nil {
			logrus.Errorf("mongo close: %v", derr)
		}
	}()
	logrus.Print("connected to mongo")

	store, err := media.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		logrus.Fatalf("cloudinary init: %s", err)
	}

	var events service.Events
	if cfg.EventsEnabled() {
		pub := kafka.NewPublisher(cfg.KafkaBrokersSlice(), cfg.KafkaTopic)
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logrus.Errorf("publisher close: %v", cerr)
			}
		}()
		events = pub
		logrus.Print("order events enabled")
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(repo, store, events, cfg.UploadFolder)

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.HTTPAddr, h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
		logrus.Print("context canceled, shutting down")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("http shutdown: %s", err)
	}
	logrus.Print("service stopped")
}
