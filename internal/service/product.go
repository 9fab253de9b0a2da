package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/product-service/internal/errs"
	"github.com/deppfellow/product-service/internal/middleware"
	"github.com/deppfellow/product-service/internal/model"
	"github.com/deppfellow/product-service/internal/repository"
	"github.com/deppfellow/product-service/internal/validation"
	"github.com/google/uuid"
)

// Validation strictness differs per operation: create reports every field
// error, update only the first.
var (
	createValidation = validation.Options{AbortEarly: false}
	updateValidation = validation.Options{AbortEarly: true}
)

// ProductService implements the product CRUD operations over a ProductStore.
type ProductService struct {
	products repository.ProductStore
	newID    func() string
}

func NewProductService(products repository.ProductStore) *ProductService {
	return &ProductService{
		products: products,
		newID:    uuid.NewString,
	}
}

// CreateProduct validates body and stores it under a freshly generated ID.
// An existing record with the same ID would be overwritten.
func (s *ProductService) CreateProduct(ctx context.Context, body string) (model.Product, error) {
	fields, err := parseBody(body)
	if err != nil {
		return nil, err
	}

	if err := validation.ToHTTPError(validation.ProductSchema.Validate(fields, createValidation)); err != nil {
		return nil, err
	}

	product := fields.WithID(s.newID())
	if err := s.products.Put(ctx, product); err != nil {
		logStorageFailure(ctx, "put", product.ID(), err)
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	return product, nil
}

// GetProduct returns the product stored under id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return s.fetchProductByID(ctx, id)
}

// UpdateProduct replaces the product stored under id with body. Attributes
// of the old record missing from body are dropped.
func (s *ProductService) UpdateProduct(ctx context.Context, id, body string) (model.Product, error) {
	// Existence check only; the old record is not merged.
	if _, err := s.fetchProductByID(ctx, id); err != nil {
		return nil, err
	}

	fields, err := parseBody(body)
	if err != nil {
		return nil, err
	}

	if err := validation.ToHTTPError(validation.ProductSchema.Validate(fields, updateValidation)); err != nil {
		return nil, err
	}

	product := fields.WithID(id)
	if err := s.products.Put(ctx, product); err != nil {
		logStorageFailure(ctx, "put", id, err)
		return nil, fmt.Errorf("failed to store product %s: %w", id, err)
	}

	return product, nil
}

// DeleteProduct removes the product stored under id.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.fetchProductByID(ctx, id); err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		logStorageFailure(ctx, "delete", id, err)
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// ListProducts returns every stored product, never nil.
func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.products.Scan(ctx)
	if err != nil {
		logStorageFailure(ctx, "scan", "", err)
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *ProductService) fetchProductByID(ctx context.Context, id string) (model.Product, error) {
	product, err := s.products.Get(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, errs.NewNotFoundError()
	}
	if err != nil {
		logStorageFailure(ctx, "get", id, err)
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return product, nil
}

// logStorageFailure records a failed store call on the request logger.
// The error itself still propagates and is logged again at the boundary.
func logStorageFailure(ctx context.Context, op, id string, err error) {
	event := middleware.LoggerFromContext(ctx).Debug().
		Err(err).
		Str("store_op", op)
	if id != "" {
		event = event.Str("product_id", id)
	}
	event.Msg("product store call failed")
}

func parseBody(body string) (model.Product, error) {
	fields, err := model.Decode([]byte(body))
	if err != nil {
		return nil, errs.NewMalformedBodyError(err)
	}
	return fields, nil
}
