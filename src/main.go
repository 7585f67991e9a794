package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"

	"crosswarped.com/wordhelper"
	"crosswarped.com/wordhelper/internal/config"
	"crosswarped.com/wordhelper/internal/httpapi"
	"crosswarped.com/wordhelper/internal/logging"
	"crosswarped.com/wordhelper/internal/wordlist"
)

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
}

// withCORS answers preflight requests and adds CORS headers to everything else.
func withCORS(next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}

func loadConfig() *config.Config {
	v := config.NewViper()
	v.SetDefault(config.KeyWordsSource, config.SourceTypeBigQuery)
	v.SetDefault(config.KeyWordsProject, os.Getenv("GOOGLE_CLOUD_PROJECT"))

	cfg, err := config.Load(v, os.Getenv("WORDHELPER_CONFIG"))
	if err != nil {
		log.Fatalf("config.Load: %v\n", err)
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.New: %v\n", err)
	}
	defer logger.Sync()

	words, err := wordlist.LoadConfigured(context.Background(), cfg.Words)
	if err != nil {
		logger.Fatal("failed to load word list", zap.Error(err))
	}
	logger.Info("loaded word list", zap.String("source", cfg.Words.Type), zap.Int("words", len(words)))

	server := httpapi.NewServer(wordhelper.NewFilter(words), logger)
	funcframework.RegisterHTTPFunction("/solutions", withCORS(server.ServeSolutions))

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logger.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}
