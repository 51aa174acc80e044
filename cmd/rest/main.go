package main

import (
	"context"
	"log"

	"course-support-agent/internal/bootstrap"
	"course-support-agent/internal/config"
	"course-support-agent/internal/server"
	"course-support-agent/internal/tracer"
	"course-support-agent/pkg/catalog"
	"course-support-agent/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		log.Panicf("Unable to bootstrap container: %v", err)
	}
	defer container.Log.Sync()

	// 4. Load the course catalog and build the index before serving.
	// The service answers no questions until the index is ready.
	records, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		log.Panicf("Unable to load course catalog: %v", err)
	}

	units := catalog.BuildUnits(records)
	if err := container.Index.Build(context.Background(), units); err != nil {
		log.Panicf("Unable to build catalog index: %v", err)
	}
	log.Printf("Catalog index ready (%d courses)", len(units))

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
