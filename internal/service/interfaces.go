package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/auth"
	"github.com/MKhiriev/go-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and exchanges credentials for tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}

// ProductService manages the product catalogue. Mutations are scoped to
// the seller that owns the product.
type ProductService interface {
	AddProduct(ctx context.Context, sellerID int64, req models.ProductCreateRequest) (models.Product, error)
	EditProduct(ctx context.Context, productID, sellerID int64, req models.ProductUpdateRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, productID, sellerID int64) error
	SearchProducts(ctx context.Context, search models.ProductSearch) ([]models.Product, error)
}

// CartService manages buyers' carts.
type CartService interface {
	AddToCart(ctx context.Context, buyerID, productID int64) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, cartItemID, buyerID int64) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, role auth.Role) (string, error)
}
