package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/spart-awards/catalog"
	"github.com/danielhkuo/spart-awards/cliparse"
	"github.com/danielhkuo/spart-awards/db"
	"github.com/danielhkuo/spart-awards/middleware"
	"github.com/danielhkuo/spart-awards/router"
	"github.com/danielhkuo/spart-awards/store"
)

func main() {
	var err error

	// Load .env if present (no-op in production)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (postgres or embedded sqlite)
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Load the award catalog; malformed catalog data is fatal
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "categories", len(cat.Categories()))

	// Create router
	mux := router.NewRouter(store.New(dbConn), cat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(cfg.FrontendURL, mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path != "" {
		return catalog.LoadFile(path)
	}
	return catalog.Default()
}
