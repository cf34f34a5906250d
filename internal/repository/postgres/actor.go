package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"castindex/internal/domain"
	models "castindex/internal/domain/models/roster"
	rosterRepo "castindex/internal/domain/repositories/roster"
)

// PostgresActorRepository implements the ActorRepository interface
type PostgresActorRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewActorRepository creates a new actor repository
func NewActorRepository(config *RepositoryConfig) rosterRepo.ActorRepository {
	return &PostgresActorRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new actor
func (r *PostgresActorRepository) Create(ctx context.Context, actor *models.Actor) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, name, actor_type, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Actors)

	now := time.Now()
	if actor.CreatedAt.IsZero() {
		actor.CreatedAt = now
	}
	if actor.UpdatedAt.IsZero() {
		actor.UpdatedAt = now
	}

	err := r.pool.QueryRow(ctx, query,
		actor.ProjectID,
		actor.Name,
		actor.Type,
		actor.FolderID,
		actor.CreatedAt,
		actor.UpdatedAt,
	).Scan(&actor.ID, &actor.CreatedAt, &actor.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create actor: %w", err)
	}

	return nil
}

// GetAllByProject retrieves all actors in a project (flat list)
func (r *PostgresActorRepository) GetAllByProject(ctx context.Context, projectID string) ([]models.Actor, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, name, actor_type, folder_id, created_at, updated_at
		FROM %s
		WHERE project_id = $1
		ORDER BY name ASC
	`, r.tables.Actors)

	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("get all actors: %w", err)
	}
	defer rows.Close()

	var actors []models.Actor
	for rows.Next() {
		var actor models.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.ProjectID,
			&actor.Name,
			&actor.Type,
			&actor.FolderID,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		actors = append(actors, actor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actors: %w", err)
	}

	return actors, nil
}

// MoveToFolders applies a batch of folder reassignments inside one
// transaction using a pipelined batch.
func (r *PostgresActorRepository) MoveToFolders(ctx context.Context, projectID string, moves []rosterRepo.ActorMove) error {
	if len(moves) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET folder_id = $1, updated_at = $2
		WHERE id = $3 AND project_id = $4
	`, r.tables.Actors)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	batch := &pgx.Batch{}
	for _, move := range moves {
		batch.Queue(query, move.FolderID, now, move.ActorID, projectID)
	}

	results := tx.SendBatch(ctx, batch)
	for _, move := range moves {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return fmt.Errorf("move actor %s: %w", move.ActorID, err)
		}
		if tag.RowsAffected() == 0 {
			results.Close()
			return fmt.Errorf("actor %s: %w", move.ActorID, domain.ErrNotFound)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
