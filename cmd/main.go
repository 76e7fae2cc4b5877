package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/create_booking"
	createCarHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/create_car"
	createReviewHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/create_review"
	deleteCarHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/delete_car"
	deleteReviewHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/delete_review"
	getUserBookingsHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/get_user_bookings"
	getWishlistHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/get_wishlist"
	listCarsHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/list_cars"
	listReviewsHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/list_reviews"
	resetPasswordHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/reset_password"
	signInHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/sign_up"
	toggleWishlistHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/toggle_wishlist"
	updateCarHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/update_car"
	updateProfileHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/update_profile"
	uploadImageHandler "github.com/m04kA/SURA-RentalService/internal/api/handlers/upload_image"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/config"
	authProviderClient "github.com/m04kA/SURA-RentalService/internal/integrations/authprovider"
	resourceAPIClient "github.com/m04kA/SURA-RentalService/internal/integrations/resourceapi"
	authService "github.com/m04kA/SURA-RentalService/internal/service/auth"
	bookingsService "github.com/m04kA/SURA-RentalService/internal/service/bookings"
	fleetService "github.com/m04kA/SURA-RentalService/internal/service/fleet"
	mediaService "github.com/m04kA/SURA-RentalService/internal/service/media"
	reviewsService "github.com/m04kA/SURA-RentalService/internal/service/reviews"
	sessionStore "github.com/m04kA/SURA-RentalService/internal/service/session"
	wishlistService "github.com/m04kA/SURA-RentalService/internal/service/wishlist"
	createBookingUC "github.com/m04kA/SURA-RentalService/internal/usecase/create_booking"
	"github.com/m04kA/SURA-RentalService/pkg/httpmetrics"
	"github.com/m04kA/SURA-RentalService/pkg/logger"
	"github.com/m04kA/SURA-RentalService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SURA-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var resourceTransport, authTransport http.RoundTripper

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		resourceTransport = httpmetrics.Wrap(nil, metricsCollector, "resource_api")
		authTransport = httpmetrics.Wrap(nil, metricsCollector, "auth_provider")
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	resourceClient := resourceAPIClient.NewClient(
		cfg.ResourceAPI.URL,
		time.Duration(cfg.ResourceAPI.Timeout)*time.Second,
		resourceTransport,
		log,
	)
	authClient := authProviderClient.NewClient(
		cfg.AuthProvider.URL,
		cfg.AuthProvider.AnonKey,
		time.Duration(cfg.AuthProvider.Timeout)*time.Second,
		authTransport,
		log,
	)
	log.Info("Integration clients initialized (ResourceAPI=%s timeout=%ds, AuthProvider=%s timeout=%ds)",
		cfg.ResourceAPI.URL, cfg.ResourceAPI.Timeout, cfg.AuthProvider.URL, cfg.AuthProvider.Timeout)

	// Инициализируем хранилище сессий и сервисы
	sessions := sessionStore.NewStore(cfg.Admin.Email, authClient, log)

	fleetSvc := fleetService.NewService(resourceClient, sessions, log)
	bookingSvc := bookingsService.NewService(resourceClient, log)
	reviewSvc := reviewsService.NewService(resourceClient, sessions, log)
	wishlistSvc := wishlistService.NewService(resourceClient, log)
	authSvc := authService.NewService(authClient, sessions, log)
	mediaSvc := mediaService.NewService(authClient, sessions, cfg.AuthProvider.StorageBucket, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(fleetSvc, bookingSvc, log)

	// Инициализируем handlers
	listCars := listCarsHandler.NewHandler(fleetSvc, log)
	createCar := createCarHandler.NewHandler(fleetSvc, log)
	updateCar := updateCarHandler.NewHandler(fleetSvc, log)
	deleteCar := deleteCarHandler.NewHandler(fleetSvc, log)
	uploadImage := uploadImageHandler.NewHandler(mediaSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	deleteReview := deleteReviewHandler.NewHandler(reviewSvc, log)

	toggleWishlist := toggleWishlistHandler.NewHandler(wishlistSvc, log)
	getWishlist := getWishlistHandler.NewHandler(wishlistSvc, log)

	signIn := signInHandler.NewHandler(authSvc, log)
	signUp := signUpHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	resetPassword := resetPasswordHandler.NewHandler(authSvc, log)
	updateProfile := updateProfileHandler.NewHandler(authSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)

	// Отзывы об автомобиле
	api.HandleFunc("/cars/{carId}/reviews", listReviews.Handle).Methods(http.MethodGet)

	// Аутентификация
	api.HandleFunc("/auth/sign-in", signIn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/sign-up", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", resetPassword.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions, log))

	// --- Сессия и профиль ---
	protected.HandleFunc("/auth/sign-out", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/profile", updateProfile.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	protected.HandleFunc("/cars/{carId}/reviews", createReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reviews/{reviewId}", deleteReview.Handle).Methods(http.MethodDelete)

	// --- Избранное ---
	protected.HandleFunc("/cars/{carId}/wishlist", toggleWishlist.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wishlist", getWishlist.Handle).Methods(http.MethodGet)

	// --- Управление автопарком (для администратора) ---
	protected.HandleFunc("/cars", createCar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cars/{id}", updateCar.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/cars/{id}", deleteCar.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/images", uploadImage.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
