package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"github.com/Promisekel/rent-easy-gh/internal/adapter/api"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/handler"
	apimiddleware "github.com/Promisekel/rent-easy-gh/internal/adapter/api/middleware"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/api/router"
	"github.com/Promisekel/rent-easy-gh/internal/adapter/repository"
	"github.com/Promisekel/rent-easy-gh/internal/infrastructure/cache"
	"github.com/Promisekel/rent-easy-gh/internal/infrastructure/firebase"
	"github.com/Promisekel/rent-easy-gh/internal/infrastructure/storage"
	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountPath := ""

	// Service account JSON from the environment wins; a file path is the
	// local development fallback.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		serviceAccountPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	listingRepo := repository.NewFirestoreListingRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	var listingCache usecase.ListingCache
	if cfg.RedisAddr != "" {
		redisCache := cache.NewListingCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CacheTTL)
		defer redisCache.Close()
		listingCache = redisCache
		log.Printf("Browse cache enabled via Redis at %s", cfg.RedisAddr)
	}

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, favoriteRepo, userRepo, storageClient, listingCache, cfg.AutoApproveListings)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, listingRepo)
	adminUseCase := usecase.NewAdminUseCase(listingRepo)

	handler.Setup(authUseCase, userUseCase, listingUseCase, favoriteUseCase, adminUseCase)
	handler.SetupUploadHandler(storageClient)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware, authClient)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
