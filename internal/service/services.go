package service

import (
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
	CartService    CartService
}

func NewServices(storages *store.Storages, issuer TokenIssuer, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, issuer, cfg.Security.BcryptCost, logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
		CartService:    NewCartService(storages.CartRepository, logger),
	}
}
