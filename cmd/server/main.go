package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pcpick/backend/config"
	httpDelivery "github.com/pcpick/backend/internal/delivery/http"
	"github.com/pcpick/backend/internal/infrastructure/catalog"
	"github.com/pcpick/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PCPick Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s (refresh every %s)", cfg.Catalog.DataPath, cfg.Catalog.RefreshInterval)

	// Initialize infrastructure dependencies
	store := catalog.NewStore()
	loader := catalog.NewLoader(store, cfg.Catalog.DataPath, cfg.Catalog.FPSPath)

	if err := loader.Load(); err != nil {
		// Serve 503s until a later refresh succeeds rather than exiting;
		// the crawler may simply not have produced a snapshot yet.
		log.Printf("WARNING: initial catalog load failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loader.StartRefresh(ctx, cfg.Catalog.RefreshInterval)

	// Initialize usecase layer
	recommendService := usecase.NewRecommendService(usecase.RecommendConfig{
		Limit:              cfg.Recommend.Limit,
		EnableDebugReasons: cfg.Recommend.EnableDebugReasons,
	})

	log.Printf("Recommend: limit=%d, debug_reasons=%v", cfg.Recommend.Limit, cfg.Recommend.EnableDebugReasons)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, store, recommendService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
