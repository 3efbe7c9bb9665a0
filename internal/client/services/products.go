package services

import (
	"context"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (int, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) error
	ActivateProduct(ctx context.Context, id int) error
	DeactivateProduct(ctx context.Context, id int) error
	// GetActiveProducts is the menu as service staff see it.
	GetActiveProducts(ctx context.Context) ([]models.ProductPublic, error)
}

type productService struct {
	backend Poster
}

func NewProductService(backend Poster) ProductService {
	return &productService{backend: backend}
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	NetPriceCents int             `json:"netPriceCents"`
	Category      models.Category `json:"category"`
}

var createProductSchema = z.Struct(z.Shape{
	"Name":          models.ProductNameSchema,
	"Description":   models.DescriptionSchema,
	"NetPriceCents": models.NetPriceCentsSchema,
	"Category":      models.CategorySchema,
})

type UpdateProductRequest struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	NetPriceCents int             `json:"netPriceCents"`
	Category      models.Category `json:"category"`
}

var updateProductSchema = z.Struct(z.Shape{
	"ID":            models.ProductIDSchema,
	"Name":          models.ProductNameSchema,
	"Description":   models.DescriptionSchema,
	"NetPriceCents": models.NetPriceCentsSchema,
	"Category":      models.CategorySchema,
})

var productIDSchema = z.Struct(z.Shape{"ID": models.ProductIDSchema})

type productsResponse struct {
	Products []models.Product `json:"products"`
}

func (r *productsResponse) Validate() error { return validateEach(r.Products) }

type publicProductsResponse struct {
	Products []models.ProductPublic `json:"products"`
}

func (r *publicProductsResponse) Validate() error { return validateEach(r.Products) }

func (s *productService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if err := s.backend.Post(ctx, "admin/get-all-products", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (s *productService) CreateProduct(ctx context.Context, req CreateProductRequest) (int, error) {
	if err := validation.Struct("new product", createProductSchema, &req); err != nil {
		return 0, err
	}

	var resp idResponse
	if err := s.backend.Post(ctx, "admin/create-product", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (s *productService) UpdateProduct(ctx context.Context, req UpdateProductRequest) error {
	if err := validation.Struct("product update", updateProductSchema, &req); err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/update-product", req, nil)
}

func (s *productService) ActivateProduct(ctx context.Context, id int) error {
	req, err := newIDRequest("product", productIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/activate-product", req, nil)
}

func (s *productService) DeactivateProduct(ctx context.Context, id int) error {
	req, err := newIDRequest("product", productIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/deactivate-product", req, nil)
}

func (s *productService) GetActiveProducts(ctx context.Context) ([]models.ProductPublic, error) {
	var resp publicProductsResponse
	if err := s.backend.Post(ctx, "service/get-active-products", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}
