package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/naolberhanu/LearnSphere/internal/handler/http"
	"github.com/naolberhanu/LearnSphere/internal/domain/contract"
	redisclient "github.com/naolberhanu/LearnSphere/internal/infrastructure/cache"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/config"
	database "github.com/naolberhanu/LearnSphere/internal/infrastructure/database"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/external_services"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/jwt"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/logger"
	passwordservice "github.com/naolberhanu/LearnSphere/internal/infrastructure/password_service"
	randomgenerator "github.com/naolberhanu/LearnSphere/internal/infrastructure/random_generator"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/repository/mongodb"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/store"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/uuidgen"
	"github.com/naolberhanu/LearnSphere/internal/infrastructure/validator"
	"github.com/naolberhanu/LearnSphere/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(appConfig.MongoDBName)
	userCollection := db.Collection("users")
	userRepo := mongodb.NewMongoUserRepository(userCollection)
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	courseRepo := mongodb.NewCourseRepository(db, userCollection)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := appConfig.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-only-insecure-secret"
		log.Println("JWT_SECRET not set, using insecure development secret")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	mailService := external_services.NewEmailService(
		appConfig.SMTPHost, appConfig.SMTPPort,
		appConfig.SMTPUsername, appConfig.SMTPPassword, appConfig.SMTPFrom,
	)
	paymentGateway := external_services.NewPaymentGateway(
		appConfig.PaymentBaseURL, appConfig.PaymentKeyID, appConfig.PaymentKeySecret,
	)
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Optional Dependency Injection: S3-compatible file storage
	var fileStorage contract.IFileStorage
	if appConfig.S3Bucket != "" {
		s3Storage, err := external_services.NewS3Storage(
			context.Background(),
			appConfig.S3Bucket, appConfig.S3Region, appConfig.S3Endpoint,
			appConfig.S3AccessKey, appConfig.S3SecretKey,
		)
		if err != nil {
			log.Fatalf("Failed to initialize file storage: %v", err)
		}
		fileStorage = s3Storage
	} else {
		log.Println("S3_BUCKET not set, uploads disabled")
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, mailService, appLogger, appConfig, appValidator, uuidGenerator, randomGenerator)
	courseUsecase := usecase.NewCourseUsecase(courseRepo, userRepo, uuidGenerator, appLogger)
	enrollmentUsecase := usecase.NewEnrollmentUsecase(courseRepo, userRepo, paymentGateway, appLogger, appConfig)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		courseCache := store.NewCourseCacheStore(rdb)
		courseUsecase.SetCourseCache(courseCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, courseUsecase, enrollmentUsecase,
		fileStorage, mailService, appConfig.ContactEmail,
		appConfig.IsProduction(),
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
