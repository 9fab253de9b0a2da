package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/product-service/internal/errs"
	"github.com/deppfellow/product-service/internal/gateway"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/deppfellow/product-service/internal/service"
)

// ProductHandler exposes the five product entry points.
type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	product, err := h.products.CreateProduct(ctx, req.Body)
	if err != nil {
		return handleError(err)
	}
	return gateway.JSON(http.StatusOK, product)
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	product, err := h.products.GetProduct(ctx, req.PathParameter(gateway.PathParamID))
	if err != nil {
		return handleError(err)
	}
	return gateway.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /products/:id.
func (h *ProductHandler) UpdateProduct(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	product, err := h.products.UpdateProduct(ctx, req.PathParameter(gateway.PathParamID), req.Body)
	if err != nil {
		return handleError(err)
	}
	return gateway.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(ctx context.Context, req gateway.Request) (gateway.Response, error) {
	if err := h.products.DeleteProduct(ctx, req.PathParameter(gateway.PathParamID)); err != nil {
		return handleError(err)
	}
	return gateway.NoContent(), nil
}

// ListProducts handles GET /products. Failures are not mapped.
func (h *ProductHandler) ListProducts(ctx context.Context, _ gateway.Request) (gateway.Response, error) {
	products, err := h.products.ListProducts(ctx)
	if err != nil {
		return gateway.Response{}, err
	}
	return gateway.JSON(http.StatusOK, products)
}

// Entrypoints names each handler for direct invocation.
func (h *ProductHandler) Entrypoints() map[string]GatewayFunc {
	return map[string]GatewayFunc{
		"create": h.CreateProduct,
		"get":    h.GetProduct,
		"update": h.UpdateProduct,
		"delete": h.DeleteProduct,
		"list":   h.ListProducts,
	}
}

// handleError renders expected failures and returns anything else unchanged.
func handleError(err error) (gateway.Response, error) {
	status, body, ok := errs.HTTPResponse(err)
	if !ok {
		return gateway.Response{}, err
	}
	return gateway.JSON(status, body)
}
