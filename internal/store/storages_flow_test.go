package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runMarketplaceFlow drives every repository against a migrated database.
func runMarketplaceFlow(t *testing.T, s *Storages) {
	t.Helper()
	ctx := context.Background()

	seller, err := s.UserRepository.CreateUser(ctx, models.User{Username: "sam", Email: "sam@x.io", PasswordHash: "h", Role: "seller"})
	require.NoError(t, err)
	buyer, err := s.UserRepository.CreateUser(ctx, models.User{Username: "bob", Email: "bob@x.io", PasswordHash: "h", Role: "buyer"})
	require.NoError(t, err)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "sam2", Email: "sam@x.io", PasswordHash: "h", Role: "seller"})
	require.ErrorIs(t, err, ErrEmailAlreadyExists)

	found, err := s.UserRepository.FindUserByEmail(ctx, "bob@x.io")
	require.NoError(t, err)
	assert.Equal(t, buyer.UserID, found.UserID)

	lamp, err := s.ProductRepository.CreateProduct(ctx, models.Product{Name: "Desk Lamp", Category: "Home", Price: 20, SellerID: seller.UserID})
	require.NoError(t, err)
	_, err = s.ProductRepository.CreateProduct(ctx, models.Product{Name: "Mug", Category: "Kitchen", Price: 5, SellerID: seller.UserID})
	require.NoError(t, err)

	byName, err := s.ProductRepository.ListProducts(ctx, models.ProductSearch{Name: "lamp"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, lamp.ProductID, byName[0].ProductID)

	either, err := s.ProductRepository.ListProducts(ctx, models.ProductSearch{Name: "lamp", Category: "kitchen"})
	require.NoError(t, err)
	assert.Len(t, either, 2)

	price := 25.0
	_, err = s.ProductRepository.UpdateProduct(ctx, lamp.ProductID, buyer.UserID, models.ProductUpdateRequest{Price: &price})
	require.ErrorIs(t, err, ErrProductNotFound)

	updated, err := s.ProductRepository.UpdateProduct(ctx, lamp.ProductID, seller.UserID, models.ProductUpdateRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, "Desk Lamp", updated.Name)

	item, err := s.CartRepository.AddToCart(ctx, buyer.UserID, lamp.ProductID)
	require.NoError(t, err)

	_, err = s.CartRepository.AddToCart(ctx, buyer.UserID, 999999)
	require.ErrorIs(t, err, ErrProductNotFound)

	require.ErrorIs(t, s.CartRepository.RemoveFromCart(ctx, item.CartItemID, seller.UserID), ErrCartItemNotFound)
	require.NoError(t, s.CartRepository.RemoveFromCart(ctx, item.CartItemID, buyer.UserID))

	require.NoError(t, s.ProductRepository.DeleteProduct(ctx, lamp.ProductID, seller.UserID))
	require.ErrorIs(t, s.ProductRepository.DeleteProduct(ctx, lamp.ProductID, seller.UserID), ErrProductNotFound)
}
