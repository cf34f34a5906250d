package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"castindex/internal/config"
	rosterRepo "castindex/internal/domain/repositories/roster"
	"castindex/internal/repository/memory"
	"castindex/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	dryRun := flag.Bool("dry-run", false, "Seed into in-memory repositories only (no database)")
	projectID := flag.String("project", "", "Project ID to seed into (default: a fresh random ID)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	project := *projectID
	if project == "" {
		project = uuid.NewString()
	}

	ctx := context.Background()

	if *dryRun {
		log.Printf("Dry run: seeding in-memory repositories (project: %s)", project)
		if err := seedDemoData(ctx, memory.NewFolderRepository(), memory.NewActorRepository(), project); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Dry run complete, nothing persisted")
		return
	}

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	// Create database connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	var folderRepo rosterRepo.FolderRepository = postgres.NewFolderRepository(repoConfig)
	var actorRepo rosterRepo.ActorRepository = postgres.NewActorRepository(repoConfig)
	if err := seedDemoData(ctx, folderRepo, actorRepo, project); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed complete (project: %s)", project)
}
