package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

// productRepository is the SQL implementation of [ProductRepository].
type productRepository struct {
	*DB
	logger *logger.Logger
}

func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(r.builder(), product)
	if err != nil {
		return models.Product{}, err
	}

	created, err := scanProduct(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Int64("seller_id", product.SellerID).
			Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateProduct applies the non-nil fields of update to the product if it
// belongs to sellerID. A missing or foreign product yields
// [ErrProductNotFound].
func (r *productRepository) UpdateProduct(ctx context.Context, productID, sellerID int64, update models.ProductUpdateRequest) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(r.builder(), productID, sellerID, update)
	if err != nil {
		return models.Product{}, err
	}

	updated, err := scanProduct(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).
			Str("func", "*productRepository.UpdateProduct").
			Int64("product_id", productID).
			Int64("seller_id", sellerID).
			Msg("error updating product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID, sellerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(r.builder(), productID, sellerID)
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.DeleteProduct").
			Int64("product_id", productID).
			Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrProductNotFound)
}

// ListProducts returns products ordered by id. An empty search returns all
// of them.
func (r *productRepository) ListProducts(ctx context.Context, search models.ProductSearch) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductsQuery(r.builder(), search, r.dialect.contains)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		products = append(products, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*productRepository.ListProducts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ProductID, &p.Name, &p.Category, &p.Description, &p.Price, &p.Discount, &p.SellerID, scanTime(&p.CreatedAt))
	return p, err
}

// expectAffected returns notFound when res reports zero affected rows.
func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
