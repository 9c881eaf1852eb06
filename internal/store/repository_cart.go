package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

// cartRepository is the SQL implementation of [CartRepository].
type cartRepository struct {
	*DB
	logger *logger.Logger
}

func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		DB:     db,
		logger: logger,
	}
}

// AddToCart places productID into buyerID's cart. A product that does not
// exist yields [ErrProductNotFound].
func (r *cartRepository) AddToCart(ctx context.Context, buyerID, productID int64) (models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCartItemQuery(r.builder(), buyerID, productID)
	if err != nil {
		return models.CartItem{}, err
	}

	var item models.CartItem
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&item.CartItemID, &item.BuyerID, &item.ProductID, scanTime(&item.CreatedAt))
	if err != nil {
		if r.dialect.classify(err) == errForeignKeyViolation {
			return models.CartItem{}, ErrProductNotFound
		}

		log.Err(err).
			Str("func", "*cartRepository.AddToCart").
			Int64("buyer_id", buyerID).
			Int64("product_id", productID).
			Msg("error inserting cart item")
		return models.CartItem{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return item, nil
}

// RemoveFromCart deletes the cart item if it belongs to buyerID, otherwise
// returns [ErrCartItemNotFound].
func (r *cartRepository) RemoveFromCart(ctx context.Context, cartItemID, buyerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCartItemQuery(r.builder(), cartItemID, buyerID)
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*cartRepository.RemoveFromCart").
			Int64("cart_item_id", cartItemID).
			Msg("error deleting cart item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrCartItemNotFound)
}
