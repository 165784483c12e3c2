package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"travelbooking/api"
	bk "travelbooking/booking"
)

func main() {
	logger := slog.Default().With("component", "main")

	err := godotenv.Load()

	if err != nil {
		logger.Error("Error loading .env file", "err", err)
	}

	cfg, err := loadConfig()

	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	// mongodb://localhost:27017
	logger.Info("connecting to MongoDB")
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer client.Disconnect(context.Background())

	if err := client.Ping(context.Background(), readpref.Primary()); err != nil {
		logger.Error("Unable to reach database", "err", err)
		os.Exit(1)
	}

	logger.Info("MongoDB connected successfully")

	store := bk.NewStore(client.Database(cfg.Database))
	service := bk.NewService(store)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", api.Liveness)

	queryRouter := r.Group("/query")
	queryHandler := api.NewQueryHandler(service)

	queryHandler.Register(queryRouter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
}
