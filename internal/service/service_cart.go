package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type cartService struct {
	cartRepository store.CartRepository

	logger *logger.Logger
}

func NewCartService(cartRepository store.CartRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository: cartRepository,
		logger:         logger,
	}
}

func (c *cartService) AddToCart(ctx context.Context, buyerID, productID int64) (models.CartItem, error) {
	return c.cartRepository.AddToCart(ctx, buyerID, productID)
}

func (c *cartService) RemoveFromCart(ctx context.Context, cartItemID, buyerID int64) error {
	return c.cartRepository.RemoveFromCart(ctx, cartItemID, buyerID)
}
