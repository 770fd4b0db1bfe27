package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/bizledger/books/backend/internal/catalog"
	"github.com/bizledger/books/backend/internal/logger"
	"github.com/bizledger/books/backend/internal/service"
	"github.com/bizledger/books/backend/internal/store"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	log := logger.Init(os.Getenv("LOG_LEVEL"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8111"
	}

	ctx := context.Background()
	useMemoryStore := os.Getenv("USE_MEMORY_STORE") == "true" || os.Getenv("ENV") == "local"

	var storeImpl store.Store
	if useMemoryStore {
		log.Info("using in-memory store for local development")
		mem := store.NewMemoryStore()
		if os.Getenv("SEED_DEMO_DATA") == "true" {
			if err := mem.SeedDemo(ctx, "demo-user"); err != nil {
				log.Error("failed to seed demo data", "error", err)
				os.Exit(1)
			}
		}
		storeImpl = mem
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			log.Error("GOOGLE_CLOUD_PROJECT is required when not using the memory store")
			os.Exit(1)
		}
		firestoreClient, err := firestore.NewClient(ctx, projectID)
		if err != nil {
			log.Error("failed to create Firestore client", "error", err)
			os.Exit(1)
		}
		defer firestoreClient.Close()
		storeImpl = store.NewFirestoreStore(firestoreClient)
	}

	reports := service.NewReportService(storeImpl, catalog.Default(), log)
	handler := service.NewHandler(reports)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Mount("/v1", handler.Routes())

	allowedOrigins := []string{"http://localhost:1234", "http://127.0.0.1:1234"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		allowedOrigins = append(allowedOrigins, strings.Split(extra, ",")...)
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-Id"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(c.Handler(r), &http2.Server{}),
	}

	log.Info("starting server", "port", port)
	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
