package store

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists marketplace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ProductRepository persists products. Mutations are scoped to the owning
// seller.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, productID, sellerID int64, update models.ProductUpdateRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, productID, sellerID int64) error
	ListProducts(ctx context.Context, search models.ProductSearch) ([]models.Product, error)
}

// CartRepository persists buyers' cart items.
type CartRepository interface {
	AddToCart(ctx context.Context, buyerID, productID int64) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, cartItemID, buyerID int64) error
}
