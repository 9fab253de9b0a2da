// Package repository handles all interactions with the product table.
//
// It hides the storage backend (in-memory, Redis, PostgreSQL) behind the
// ProductStore capability so the service layer only ever sees point get,
// put, delete and a full scan.
package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/product-service/internal/model"
)

// ProductsTable names the table (or Redis hash) holding product records.
const ProductsTable = "products"

// ErrProductNotFound is returned by Get when no record has the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductStore is a key-value table addressed by productID.
type ProductStore interface {
	// Get returns the record stored under id, or ErrProductNotFound.
	Get(ctx context.Context, id string) (model.Product, error)

	// Put stores p under p.ID(), replacing any existing record.
	Put(ctx context.Context, p model.Product) error

	// Delete removes the record stored under id. Deleting a missing record
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Scan returns every record in the table.
	Scan(ctx context.Context) ([]model.Product, error)
}

// errMissingID guards the primary-key invariant on writes.
var errMissingID = errors.New("product has no " + model.FieldID)
