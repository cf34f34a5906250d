package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"castindex/internal/repository/postgres"
)

// runSchema ensures the folder and actor tables exist. Duplicate folder
// names under one parent are additionally guarded at the application level
// because NULL parents bypass the unique index.
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				project_id UUID NOT NULL,
				parent_id  UUID REFERENCES %s(id),
				name       TEXT NOT NULL,
				kind       TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				UNIQUE (project_id, kind, parent_id, name)
			)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				project_id UUID NOT NULL,
				name       TEXT NOT NULL,
				actor_type TEXT NOT NULL DEFAULT '',
				folder_id  UUID REFERENCES %s(id),
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Actors, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_project ON %s (project_id)`, tables.Folders, tables.Folders),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_project ON %s (project_id)`, tables.Actors, tables.Actors),
	}

	for _, statement := range statements {
		if _, err := pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("run schema statement: %w", err)
		}
	}

	return nil
}

// dropAllTables removes the seeded tables (dev/test only, guarded in main)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, tables.Actors),
		fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, tables.Folders),
	}

	for _, statement := range statements {
		if _, err := pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	return nil
}
