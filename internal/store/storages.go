package store

import "github.com/MKhiriev/go-marketplace/internal/logger"

// Storages groups every repository backed by one database.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	CartRepository    CartRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		CartRepository:    NewCartRepository(db, log),
	}
}
