package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crestview-Financial/bank-portal-api/internal/domain"
)

// Repo is a Postgres implementation of ledger.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]domain.Transaction, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, description, amount, entry_date
		FROM ledger_entries
		ORDER BY pos DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0)
	for rows.Next() {
		var e domain.Transaction
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	return out, nil
}

func (r *Repo) Append(ctx context.Context, description string, amount int64, date string) (domain.Transaction, error) {
	if r.pool == nil {
		return domain.Transaction{}, errors.New("nil postgres pool")
	}

	var entry domain.Transaction
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		// Serialize the length-read/id-assign/insert sequence across connections.
		if _, err := tx.Exec(ctx, `LOCK TABLE ledger_entries IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock ledger_entries: %w", err)
		}

		var count int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM ledger_entries`).Scan(&count); err != nil {
			return fmt.Errorf("count ledger entries: %w", err)
		}

		entry = domain.Transaction{
			ID:          count + 1,
			Description: description,
			Amount:      amount,
			Date:        date,
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO ledger_entries (id, description, amount, entry_date)
			VALUES ($1, $2, $3, $4)
		`, entry.ID, entry.Description, entry.Amount, entry.Date)
		if err != nil {
			return fmt.Errorf("insert ledger entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return entry, nil
}

// Seed loads head-first entries into an empty table, preserving their display
// order. Used at startup and by tests; it is an error to seed a non-empty ledger.
func (r *Repo) Seed(ctx context.Context, entries []domain.Transaction) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM ledger_entries`).Scan(&count); err != nil {
			return fmt.Errorf("count ledger entries: %w", err)
		}
		if count != 0 {
			return fmt.Errorf("ledger already has %d entries", count)
		}
		// Insert tail-first so ascending pos reads back as the head-first input.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			_, err := tx.Exec(ctx, `
				INSERT INTO ledger_entries (id, description, amount, entry_date)
				VALUES ($1, $2, $3, $4)
			`, e.ID, e.Description, e.Amount, e.Date)
			if err != nil {
				return fmt.Errorf("seed ledger entry %d: %w", e.ID, err)
			}
		}
		return nil
	})
}

// Empty reports whether the ledger has no entries.
func (r *Repo) Empty(ctx context.Context) (bool, error) {
	if r.pool == nil {
		return false, errors.New("nil postgres pool")
	}
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM ledger_entries`).Scan(&count); err != nil {
		return false, fmt.Errorf("count ledger entries: %w", err)
	}
	return count == 0, nil
}
