package prefs

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

func (r *PostgresRepository) Get(ctx context.Context) (string, error) {
	var doc []byte
	err := r.db.QueryRow(ctx,
		`SELECT doc FROM app_state WHERE key = $1`,
		StorageKey,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var code string
	if err := json.Unmarshal(doc, &code); err != nil {
		logger.L.Warn("currency preference corrupt, resetting", "error", err)
		return "", nil
	}
	return code, nil
}

func (r *PostgresRepository) Set(ctx context.Context, code string) error {
	doc, err := json.Marshal(code)
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
