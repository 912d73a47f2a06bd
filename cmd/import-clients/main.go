// Command import-clients bulk-loads a clients CSV into the configured store,
// applying the same header, validation and duplicate rules as the API.
//
// Flags:
//
//	-file  path to the CSV file (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/marketing-studio/internal/adapter/collection"
	"github.com/heartmarshall/marketing-studio/internal/app"
	"github.com/heartmarshall/marketing-studio/internal/config"
	"github.com/heartmarshall/marketing-studio/internal/domain"
	"github.com/heartmarshall/marketing-studio/internal/service/clients"
)

func main() {
	path := flag.String("file", "", "path to the clients CSV file")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store, closeStore, err := app.OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	f, err := os.Open(*path)
	if err != nil {
		logger.Error("open csv", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	svc := clients.NewService(logger, collection.New[domain.Client](store, domain.KeyClients), nil)
	svc.Load(ctx)

	result, err := svc.ImportCSV(ctx, f)
	if err != nil {
		logger.Error("import failed", slog.String("file", *path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("imported: %d\nskipped (duplicate email): %d\ninvalid: %d\n",
		result.Imported, result.Skipped, result.Invalid)
}
