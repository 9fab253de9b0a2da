package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/product-service/internal/model"
	"github.com/deppfellow/product-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxQuerier is the part of *pgxpool.Pool the products store uses.
type PgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresProductStore keeps each product as a JSONB document in the
// products table (see database/migrations).
type PostgresProductStore struct {
	pool PgxQuerier
}

func NewPostgresProductStore(pool PgxQuerier) *PostgresProductStore {
	return &PostgresProductStore{pool: pool}
}

func (s *PostgresProductStore) Get(ctx context.Context, id string) (model.Product, error) {
	var data []byte

	err := s.pool.QueryRow(ctx,
		`SELECT item FROM products WHERE product_id = $1`, id,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, sqlerr.Wrap(fmt.Sprintf("selecting product %s", id), err)
	}

	p, err := model.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding product %s: %w", id, err)
	}
	return p, nil
}

// Put upserts unconditionally. There is no version check.
func (s *PostgresProductStore) Put(ctx context.Context, p model.Product) error {
	id := p.ID()
	if id == "" {
		return errMissingID
	}

	data, err := p.Encode()
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO products (product_id, item)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (product_id) DO UPDATE SET item = EXCLUDED.item`,
		id, string(data),
	)
	return sqlerr.Wrap(fmt.Sprintf("upserting product %s", id), err)
}

func (s *PostgresProductStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, id)
	return sqlerr.Wrap(fmt.Sprintf("deleting product %s", id), err)
}

func (s *PostgresProductStore) Scan(ctx context.Context) ([]model.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT item FROM products ORDER BY product_id`)
	if err != nil {
		return nil, sqlerr.Wrap("scanning products", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, sqlerr.Wrap("scanning products", err)
	}

	products := make([]model.Product, 0, len(items))
	for _, data := range items {
		p, err := model.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding product row: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}
