package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"heiwahouse/internal/config"
	"heiwahouse/internal/database"
	"heiwahouse/internal/middleware"
	"heiwahouse/internal/modules/auth"
	"heiwahouse/internal/modules/availability"
	"heiwahouse/internal/modules/booking"
	"heiwahouse/internal/modules/catalog"
	"heiwahouse/internal/modules/feed"
	jwtsvc "heiwahouse/internal/pkg/jwt"
	"heiwahouse/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	campRepo := repository.NewSurfCampRepository(db)
	addOnRepo := repository.NewAddOnRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := feed.NewHub()
	defer hub.Close()

	availabilityService := availability.NewService(roomRepo, assignmentRepo, cfg.FailLoud)
	availabilityCache := availability.NewCache(availabilityService, availability.WithTTL(cfg.CacheTTL))
	availabilityHandler := availability.NewHandler(availabilityCache, availabilityService)

	bookingService := booking.NewService(bookingRepo, roomRepo, campRepo, addOnRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(roomRepo, campRepo, addOnRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	authService := auth.NewService(adminRepo, j)
	authHandler := auth.NewHandler(authService)

	feedHandler := feed.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// WordPress widget surface, API-key guarded.
	wp := r.Group("/api/wordpress")
	wp.Use(middleware.WidgetAPIKey(cfg.WidgetAPIKey))
	{
		availabilityHandler.RegisterRoutes(wp)
	}

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)

		admin := v1.Group("/")
		admin.Use(middleware.AdminAuth(j))
		{
			bookingHandler.RegisterAdminRoutes(admin)
			catalogHandler.RegisterAdminRoutes(admin)
			feedHandler.RegisterAdminRoutes(admin)
		}
	}

	// No global write timeout: the admin feed holds long-lived websocket
	// connections.
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Println("Listening on", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
