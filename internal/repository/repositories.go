package repository

import (
	"fmt"

	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Products ProductStore
}

// NewRepositories picks the product store matching the configured driver.
// The connection itself is owned by the server.
func NewRepositories(s *server.Server) (*Repositories, error) {
	var products ProductStore

	switch s.Config.Storage.Driver {
	case config.DriverMemory:
		products = NewMemoryProductStore()
	case config.DriverRedis:
		if s.Redis == nil {
			return nil, fmt.Errorf("redis storage selected but no redis client is connected")
		}
		products = NewRedisProductStore(s.Redis)
	case config.DriverPostgres:
		if s.DB == nil {
			return nil, fmt.Errorf("postgres storage selected but no database is connected")
		}
		products = NewPostgresProductStore(s.DB.Pool)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", s.Config.Storage.Driver)
	}

	return &Repositories{Products: products}, nil
}
