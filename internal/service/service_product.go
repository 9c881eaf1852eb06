package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

func (p *productService) AddProduct(ctx context.Context, sellerID int64, req models.ProductCreateRequest) (models.Product, error) {
	return p.productRepository.CreateProduct(ctx, models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
		SellerID:    sellerID,
	})
}

// EditProduct applies a partial update. A request that changes nothing
// fails with ErrNothingToUpdate before the store is touched.
func (p *productService) EditProduct(ctx context.Context, productID, sellerID int64, req models.ProductUpdateRequest) (models.Product, error) {
	if req.IsEmpty() {
		return models.Product{}, ErrNothingToUpdate
	}

	product, err := p.productRepository.UpdateProduct(ctx, productID, sellerID, req)
	if err != nil {
		if !errors.Is(err, store.ErrProductNotFound) {
			logger.FromContext(ctx).Err(err).
				Int64("product_id", productID).
				Int64("seller_id", sellerID).
				Msg("product update failed")
		}
		return models.Product{}, fmt.Errorf("product update failed: %w", err)
	}

	return product, nil
}

func (p *productService) DeleteProduct(ctx context.Context, productID, sellerID int64) error {
	return p.productRepository.DeleteProduct(ctx, productID, sellerID)
}

func (p *productService) SearchProducts(ctx context.Context, search models.ProductSearch) ([]models.Product, error) {
	return p.productRepository.ListProducts(ctx, search)
}
