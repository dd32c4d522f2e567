package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auctionapp "github.com/muhammadheryan/el-rastro/application/auction"
	chatapp "github.com/muhammadheryan/el-rastro/application/chat"
	checkoutapp "github.com/muhammadheryan/el-rastro/application/checkout"
	filterapp "github.com/muhammadheryan/el-rastro/application/filter"
	productapp "github.com/muhammadheryan/el-rastro/application/product"
	userapp "github.com/muhammadheryan/el-rastro/application/user"
	"github.com/muhammadheryan/el-rastro/cmd/config"
	redisclient "github.com/muhammadheryan/el-rastro/cmd/redis"
	_ "github.com/muhammadheryan/el-rastro/docs"
	authRepo "github.com/muhammadheryan/el-rastro/repository/auth"
	bidRepo "github.com/muhammadheryan/el-rastro/repository/bid"
	carbonRepo "github.com/muhammadheryan/el-rastro/repository/carbon"
	chatRepo "github.com/muhammadheryan/el-rastro/repository/chat"
	photoRepo "github.com/muhammadheryan/el-rastro/repository/photo"
	productRepo "github.com/muhammadheryan/el-rastro/repository/product"
	ratingRepo "github.com/muhammadheryan/el-rastro/repository/rating"
	redisRepo "github.com/muhammadheryan/el-rastro/repository/redis"
	"github.com/muhammadheryan/el-rastro/repository/rest"
	userRepo "github.com/muhammadheryan/el-rastro/repository/user"
	"github.com/muhammadheryan/el-rastro/thirdparty/rabbitmq"
	"github.com/muhammadheryan/el-rastro/transport"
	"github.com/muhammadheryan/el-rastro/utils/logger"
	"go.uber.org/zap"
)

// @title EL RASTRO API
// @version 1.0
// @description EL RASTRO marketplace API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize REST clients, one per backend service
	timeout := cfg.Upstream.Timeout
	userClient := rest.NewClient("user", cfg.Services.User, timeout)
	productClient := rest.NewClient("product", cfg.Services.Product, timeout)

	// Initialize repositories
	AuthRepo := authRepo.NewAuthRepository(rest.NewClient("auth", cfg.Services.Auth, timeout))
	UserRepo := userRepo.NewUserRepository(userClient)
	ProductRepo := productRepo.NewProductRepository(productClient)
	PhotoRepo := photoRepo.NewPhotoRepository(rest.NewClient("image-storage", cfg.Services.Image, timeout))
	BidRepo := bidRepo.NewBidRepository(rest.NewClient("bid", cfg.Services.Bid, timeout))
	ChatRepo := chatRepo.NewChatRepository(rest.NewClient("chat", cfg.Services.Chat, timeout))
	RatingRepo := ratingRepo.NewRatingRepository(rest.NewClient("rating", cfg.Services.Rating, timeout))
	CarbonRepo := carbonRepo.NewCarbonRepository(rest.NewClient("carbon-footprint", cfg.Services.Carbon, timeout))
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// Initialize RabbitMQ publisher
	var publisher rabbitmq.EventPublisher = rabbitmq.NopPublisher{}
	if cfg.RabbitMQ.Enabled() {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Warn("RABBITMQ_HOST not set, activity events and auction close scheduling are disabled")
	}

	// Initialize application layers
	FilterApp := filterapp.NewFilterApp(cfg, RedisRepo)
	UserApp := userapp.NewUserApp(cfg, AuthRepo, UserRepo, PhotoRepo, RatingRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(cfg, FilterApp, ProductRepo, PhotoRepo, RatingRepo, publisher)
	AuctionApp := auctionapp.NewAuctionApp(cfg, ProductRepo, PhotoRepo, RatingRepo, BidRepo, publisher)
	ChatApp := chatapp.NewChatApp(cfg, ChatRepo, ProductRepo, UserRepo, publisher)
	CheckoutApp := checkoutapp.NewCheckoutApp(cfg, ProductRepo, PhotoRepo, UserRepo, CarbonRepo)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:     UserApp,
		FilterApp:   FilterApp,
		ProductApp:  ProductApp,
		AuctionApp:  AuctionApp,
		ChatApp:     ChatApp,
		CheckoutApp: CheckoutApp,
	})

	// Start the auction close consumer
	if cfg.RabbitMQ.Enabled() {
		internalClient := rest.NewClient("internal", cfg.Auth.InternalAPIURL, timeout)
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, internalClient, cfg.Auth.InternalAPIKey)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start consumer", zap.Error(err))
		}
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("err shutdown server", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}
