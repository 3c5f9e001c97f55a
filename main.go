package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"harmoniaAPI/handlers"
	"harmoniaAPI/middleware"
	"harmoniaAPI/services"
)

var (
	dbPool           *pgxpool.Pool
	contentService   *services.ContentService
	userService      *services.UserService
	habitService     *services.HabitService
	dashboardService *services.DashboardService
	activityService  *services.ActivityService
	sleepService     *services.SleepService
	waterService     *services.WaterService
	journalService   *services.JournalService
	nutritionService *services.NutritionService
	coachService     *services.CoachService
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Successfully connected to Postgres")

	contentPath := os.Getenv("CONTENT_PATH")
	if contentPath == "" {
		if _, statErr := os.Stat("./assets/content.yaml"); statErr == nil {
			contentPath = "./assets/content.yaml"
		}
	}
	contentService, err = services.NewContentService(contentPath)
	if err != nil {
		log.Fatal("Failed to load content catalog:", err)
	}

	userService = services.NewUserService(dbPool)
	habitService = services.NewHabitService(dbPool)
	dashboardService = services.NewDashboardService(dbPool, habitService, contentService)
	activityService = services.NewActivityService(dbPool)
	sleepService = services.NewSleepService(dbPool)
	waterService = services.NewWaterService(dbPool)
	journalService = services.NewJournalService(dbPool)
	nutritionService = services.NewNutritionService(dbPool, services.NewCatalogAnalyzer(contentService))
	coachService = services.NewCoachService(dbPool, contentService)

	middleware.InitPrometheus()
}

func main() {
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	habitHandler := handlers.NewHabitHandler(habitService, contentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	sleepHandler := handlers.NewSleepHandler(sleepService)
	waterHandler := handlers.NewWaterHandler(waterService)
	journalHandler := handlers.NewJournalHandler(journalService)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService)
	coachHandler := handlers.NewCoachHandler(coachService)

	r := mux.NewRouter()

	go middleware.CleanupVisitors()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler()))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "harmonia-api"}`))
	}).Methods("GET")

	r.HandleFunc("/users/login", userHandler.Login).Methods("POST")
	r.HandleFunc("/users/{id}", userHandler.GetUser).Methods("GET")
	r.HandleFunc("/users/{id}", userHandler.UpdateGoal).Methods("PATCH")

	r.HandleFunc("/dashboard/user/{id}", dashboardHandler.GetDashboard).Methods("GET")

	r.HandleFunc("/habits/{id}/toggle", habitHandler.Toggle).Methods("POST")
	r.HandleFunc("/habits/{id}/history", habitHandler.GetHistory).Methods("GET")
	r.HandleFunc("/users/{id}/habits", habitHandler.AddHabit).Methods("POST")
	r.HandleFunc("/onboarding/suggest-habits", habitHandler.SuggestHabits).Methods("POST")

	r.HandleFunc("/users/{id}/activities/", activityHandler.ListActivities).Methods("GET")
	r.HandleFunc("/activities/", activityHandler.CreateActivity).Methods("POST")

	r.HandleFunc("/users/{id}/sleep", sleepHandler.AddSleepLog).Methods("POST")
	r.HandleFunc("/users/{id}/sleep", sleepHandler.ListSleepLogs).Methods("GET")

	r.HandleFunc("/users/{id}/water", waterHandler.AddWaterLog).Methods("POST")
	r.HandleFunc("/users/{id}/water", waterHandler.ListWaterLogs).Methods("GET")
	r.HandleFunc("/water/{id}", waterHandler.DeleteWaterLog).Methods("DELETE")

	r.HandleFunc("/users/{id}/journal", journalHandler.SaveEntry).Methods("POST")
	r.HandleFunc("/journal_entries/{id}", journalHandler.ListEntries).Methods("GET")

	r.HandleFunc("/nutrition/analyze-meal", nutritionHandler.AnalyzeMeal).Methods("POST")
	r.HandleFunc("/nutrition", nutritionHandler.SaveLog).Methods("POST")

	r.HandleFunc("/coach/ask", coachHandler.Ask).Methods("POST")

	// CORS configuration
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "X-Request-ID"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length", "X-Request-ID"}),
		gorillaHandlers.AllowCredentials(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	port = ":" + port

	server := http.Server{
		Addr:         port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
