package history

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bingyoan/sausage-menu-ai/internal/logger"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) ([]Record, error) {
	var doc []byte
	err := r.db.QueryRow(ctx,
		`SELECT doc FROM app_state WHERE key = $1`,
		StorageKey,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Record
	if err := json.Unmarshal(doc, &records); err != nil {
		// corrupt persisted state counts as no prior state
		logger.L.Warn("history document corrupt, resetting to empty", "error", err)
		return []Record{}, nil
	}
	return records, nil
}

func (r *PostgresRepository) Save(ctx context.Context, records []Record) error {
	doc, err := json.Marshal(records)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO app_state (key, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			doc = $2,
			updated_at = now()`,
		StorageKey, doc,
	)
	return err
}
