package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCodeStore persiste códigos de canje en Postgres. Implementa
// service.SingleUseStore: el consumo es un único UPDATE condicional, así que
// la garantía de un solo canje se mantiene entre instancias y reinicios.
type PgCodeStore struct {
	pool *pgxpool.Pool
}

func NewPgCodeStore(pool *pgxpool.Pool) *PgCodeStore {
	return &PgCodeStore{pool: pool}
}

const codeSchema = `
	CREATE TABLE IF NOT EXISTS redemption_codes (
		code        TEXT PRIMARY KEY,
		issued_at   TIMESTAMPTZ NOT NULL,
		expires_at  TIMESTAMPTZ NOT NULL,
		redeemed_at TIMESTAMPTZ
	)
`

// EnsureSchema crea la tabla de códigos si no existe.
func (r *PgCodeStore) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, codeSchema)
	return err
}

func (r *PgCodeStore) Put(ctx context.Context, code string, ttl time.Duration) error {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	const query = `
		INSERT INTO redemption_codes (code, issued_at, expires_at)
		VALUES ($1, $2, $3)
	`
	now := time.Now().UTC()
	_, err := r.pool.Exec(ctx, query, code, now, now.Add(ttl))
	return err
}

func (r *PgCodeStore) Consume(ctx context.Context, code string) (bool, error) {
	if strings.TrimSpace(code) == "" {
		return false, nil
	}
	const query = `
		UPDATE redemption_codes
		SET redeemed_at = $2
		WHERE code = $1 AND redeemed_at IS NULL AND expires_at > $2
		RETURNING code
	`
	var consumed string
	err := r.pool.QueryRow(ctx, query, code, time.Now().UTC()).Scan(&consumed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
