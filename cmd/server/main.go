package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arjun/infographic-ai/backend/internal/auth"
	"github.com/arjun/infographic-ai/backend/internal/config"
	"github.com/arjun/infographic-ai/backend/internal/gemini"
	"github.com/arjun/infographic-ai/backend/internal/infographic"
	"github.com/arjun/infographic-ai/backend/internal/middleware"
	"github.com/arjun/infographic-ai/backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatalf("postgres migrate: %v", err)
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	mongoStore := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	defer rdb.Close()
	sessions := auth.NewSessionStore(rdb)

	// ── MinIO ────────────────────────────────────────────────
	minioStore, err := store.NewMinioStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		log.Fatalf("minio connect: %v", err)
	}

	// ── Gemini ───────────────────────────────────────────────
	generator := gemini.NewService(gemini.Options{
		APIKey:       cfg.GeminiAPIKey,
		TextModel:    cfg.TextModel,
		ImageModel:   cfg.ImageModel,
		VideoModel:   cfg.VideoModel,
		PollInterval: cfg.PollInterval,
	})

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(pgStore, sessions)
	infographicHandler := infographic.NewHandler(mongoStore, minioStore, generator, cfg.TextModel)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (public)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.With(middleware.RequireAuth(sessions)).Get("/me", authHandler.Me)
	})

	// Infographic routes (protected)
	r.Route("/api/infographics", func(r chi.Router) {
		r.Use(middleware.RequireAuth(sessions))
		r.Post("/", infographicHandler.Create)
		r.Get("/", infographicHandler.List)
		r.Get("/{id}", infographicHandler.Get)
		r.Delete("/{id}", infographicHandler.Delete)
		r.Post("/{id}/edit", infographicHandler.Edit)
		r.Post("/{id}/animate", infographicHandler.Animate)
		r.Get("/{id}/image", infographicHandler.DownloadImage)
		r.Get("/{id}/video", infographicHandler.DownloadVideo)
	})

	// ── Server ───────────────────────────────────────────────
	// Video jobs poll for minutes; the write timeout has to cover them.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 15 * time.Minute,
	}

	go func() {
		log.Printf("Backend listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
