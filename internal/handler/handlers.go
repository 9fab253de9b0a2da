package handler

import (
	"github.com/deppfellow/product-service/internal/server"
	"github.com/deppfellow/product-service/internal/service"
)

// Handlers groups every handler so the router receives a single value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Product *ProductHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Product: NewProductHandler(s, services.Product),
	}
}
