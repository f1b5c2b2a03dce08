// Command riskscoped is the hosted RiskScope service.
// It serves the evaluation API, the signed partner feed endpoint,
// and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/riskscope/riskscope/internal/api"
	"github.com/riskscope/riskscope/internal/archive"
	"github.com/riskscope/riskscope/internal/evaluation"
	"github.com/riskscope/riskscope/internal/feed"
	"github.com/riskscope/riskscope/internal/platform"
	"github.com/riskscope/riskscope/internal/store"
	"github.com/riskscope/riskscope/pkg/scoring"
)

type config struct {
	Port          string
	DatabaseURL   string
	APIKey        string
	FeedSecret    string
	AllowedOrigin string

	// Archive backend selection: GCS wins over S3 wins over local.
	GCSBucket   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	LocalPath   string
}

func loadConfig() config {
	return config{
		Port:          envOrDefault("PORT", "8080"),
		DatabaseURL:   envOrDefault("DATABASE_URL", "postgres://localhost:5432/riskscope?sslmode=disable"),
		APIKey:        os.Getenv("API_KEY"),
		FeedSecret:    os.Getenv("FEED_SECRET"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		GCSBucket:     os.Getenv("GCS_BUCKET"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      os.Getenv("S3_REGION"),
		S3Endpoint:    os.Getenv("S3_ENDPOINT"),
		S3AccessKey:   os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:   os.Getenv("S3_SECRET_KEY"),
		LocalPath:     envOrDefault("LOCAL_STORAGE_PATH", "/tmp/riskscope-data"),
	}
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	schemaVersion, err := platform.AutoMigrate(db)
	if err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	log.Printf("database schema at version %d", schemaVersion)

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	storeSvc := store.NewService(db)
	engine := scoring.NewEngine(scoring.Defaults())
	evalSvc := evaluation.NewService(storeSvc, storage, engine)

	apiHandler := api.NewHandler(storeSvc, evalSvc, nil)
	feedHandler := feed.NewHandler([]byte(cfg.FeedSecret), evalSvc)

	// Set up HTTP routes. The API key guards /api/ only; the feed endpoint
	// authenticates with its own HMAC signature and healthz stays open.
	apiMux := http.NewServeMux()
	apiHandler.RegisterRoutes(apiMux)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.APIKeyAuth(cfg.APIKey)(apiMux))
	mux.Handle("POST /v1/feeds/batches", feedHandler)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(cfg.AllowedOrigin)(mux),
	}

	// Graceful shutdown
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting riskscoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newStorage picks the archive backend from the environment.
func newStorage(ctx context.Context, cfg config) (archive.StorageClient, error) {
	switch {
	case cfg.GCSBucket != "":
		return archive.NewGCSStorage(ctx, cfg.GCSBucket)
	case cfg.S3Bucket != "":
		return archive.NewS3Storage(ctx, archive.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	default:
		return archive.NewLocalStorage(cfg.LocalPath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
