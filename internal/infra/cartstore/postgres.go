package cartstore

import (
	"context"

	"dozzze-checkout/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSnapshots stores session slices as jsonb rows keyed by
// (session_id, slice). Rows are a cache of the in-memory state; they may be
// wiped by the clear-on-logout path at any time.
type PostgresSnapshots struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshots(db *pgxpool.Pool) *PostgresSnapshots {
	return &PostgresSnapshots{db: db}
}

func (r *PostgresSnapshots) Save(ctx context.Context, sessionID uuid.UUID, slices map[string][]byte) error {
	batch := &pgx.Batch{}
	for _, slice := range persistedSlices {
		payload, ok := slices[slice]
		if !ok {
			batch.Queue(`DELETE FROM cart_snapshots WHERE session_id = $1 AND slice = $2`, sessionID, slice)
			continue
		}
		batch.Queue(`
			INSERT INTO cart_snapshots (session_id, slice, payload, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (session_id, slice)
			DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
			sessionID, slice, payload)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for range persistedSlices {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to save cart snapshot", err)
		}
	}
	return nil
}

func (r *PostgresSnapshots) Load(ctx context.Context, sessionID uuid.UUID) (map[string][]byte, error) {
	rows, err := r.db.Query(ctx,
		`SELECT slice, payload FROM cart_snapshots WHERE session_id = $1`, sessionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart snapshot", err)
	}
	defer rows.Close()

	slices := make(map[string][]byte)
	for rows.Next() {
		var slice string
		var payload []byte
		if err := rows.Scan(&slice, &payload); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart snapshot row", err)
		}
		slices[slice] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart snapshot rows", err)
	}
	return slices, nil
}

func (r *PostgresSnapshots) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM cart_snapshots WHERE session_id = $1`, sessionID); err != nil {
		return infra.WrapRepoErr("failed to delete cart snapshot", err)
	}
	return nil
}
