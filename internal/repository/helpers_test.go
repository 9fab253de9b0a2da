package repository

import (
	"github.com/deppfellow/product-service/internal/config"
	"github.com/deppfellow/product-service/internal/server"
	"github.com/rs/zerolog"
)

func newTestServer(driver string) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Storage: config.StorageConfig{Driver: driver}},
		Logger: &logger,
	}
}
