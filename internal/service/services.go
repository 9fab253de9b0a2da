package service

import (
	"github.com/deppfellow/product-service/internal/repository"
	"github.com/deppfellow/product-service/internal/server"
)

type Services struct {
	Product *ProductService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Product: NewProductService(repos.Products),
	}
}
