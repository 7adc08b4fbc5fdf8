package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/export"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/suggest"
)

func main() {
	ctx := context.Background()

	cfgPath := os.Getenv("RESUME_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// infra setup
	pool, err := infra.NewSnapshotsPool(ctx, cfg.SnapshotsDSN)
	if err != nil {
		log.Printf("warning: snapshots DB not available: %v", err)
	}
	snapshots := repo.NewSnapshotsRepo(pool)
	if err := snapshots.EnsureSchema(ctx); err != nil {
		log.Printf("warning: snapshots schema: %v", err)
	}

	store := repo.NewFileStore(cfg.DataDir)
	data, settings := usecase.Restore(store)
	session := usecase.NewSession(data, settings, store, snapshots)

	surface := infra.NewChromedpSurface()
	if cfg.ChromePath != "" {
		surface.ExecPath = cfg.ChromePath
	}
	exporter := export.NewPDFExporter(surface)
	suggester := suggest.New(cfg.SuggestSeed, cfg.SuggestLatency)

	app := fiber.New()
	h := httpadapter.NewHandler(session, exporter, suggester)
	h.Register(app)

	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
