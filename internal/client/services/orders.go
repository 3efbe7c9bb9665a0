package services

import (
	"context"
	"errors"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, tableID int, products []models.OrderProduct) error
	RegisterPayment(ctx context.Context, tableID int, products []models.OrderProduct) error
	GetTableOrders(ctx context.Context, tableID int) ([]models.Order, error)
	GetTablePayments(ctx context.Context, tableID int) ([]models.Payment, error)
	// GetTableBalance is the backend's view of what the table still owes.
	GetTableBalance(ctx context.Context, tableID int) (int, error)
	GetTableUnpaidProducts(ctx context.Context, tableID int) ([]models.OrderProduct, error)
}

type orderService struct {
	backend Poster
}

func NewOrderService(backend Poster) OrderService {
	return &orderService{backend: backend}
}

// LinesRequest is the body of both place-order and register-payment.
type LinesRequest struct {
	TableID  int                   `json:"tableId"`
	Products []models.OrderProduct `json:"products"`
}

var linesRequestSchema = z.Struct(z.Shape{
	"TableID":  models.TableIDSchema,
	"Products": models.OrderProductsSchema,
})

func newLinesRequest(subject string, tableID int, products []models.OrderProduct) (LinesRequest, error) {
	req := LinesRequest{TableID: tableID, Products: products}
	if len(products) == 0 {
		return req, validation.Field(subject, "Products", "Mindestens ein Produkt ist erforderlich.")
	}
	return req, validation.Struct(subject, linesRequestSchema, &req)
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

func (r *ordersResponse) Validate() error { return validateEach(r.Orders) }

type paymentsResponse struct {
	Payments []models.Payment `json:"payments"`
}

func (r *paymentsResponse) Validate() error { return validateEach(r.Payments) }

type balanceResponse struct {
	BalanceCents *int `json:"balanceCents"`
}

func (r *balanceResponse) Validate() error {
	if r.BalanceCents == nil {
		return errors.New("balanceCents missing")
	}
	return nil
}

type orderProductsResponse struct {
	Products []models.OrderProduct `json:"products"`
}

func (r *orderProductsResponse) Validate() error { return validateEach(r.Products) }

func (s *orderService) PlaceOrder(ctx context.Context, tableID int, products []models.OrderProduct) error {
	req, err := newLinesRequest("order", tableID, products)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "service/place-order", req, nil)
}

func (s *orderService) RegisterPayment(ctx context.Context, tableID int, products []models.OrderProduct) error {
	req, err := newLinesRequest("payment", tableID, products)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "service/register-payment", req, nil)
}

func (s *orderService) GetTableOrders(ctx context.Context, tableID int) ([]models.Order, error) {
	req, err := newTableRequest(tableID)
	if err != nil {
		return nil, err
	}

	var resp ordersResponse
	if err := s.backend.Post(ctx, "service/get-table-orders", req, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (s *orderService) GetTablePayments(ctx context.Context, tableID int) ([]models.Payment, error) {
	req, err := newTableRequest(tableID)
	if err != nil {
		return nil, err
	}

	var resp paymentsResponse
	if err := s.backend.Post(ctx, "service/get-table-payments", req, &resp); err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

func (s *orderService) GetTableBalance(ctx context.Context, tableID int) (int, error) {
	req, err := newTableRequest(tableID)
	if err != nil {
		return 0, err
	}

	var resp balanceResponse
	if err := s.backend.Post(ctx, "service/get-table-balance", req, &resp); err != nil {
		return 0, err
	}
	return *resp.BalanceCents, nil
}

func (s *orderService) GetTableUnpaidProducts(ctx context.Context, tableID int) ([]models.OrderProduct, error) {
	req, err := newTableRequest(tableID)
	if err != nil {
		return nil, err
	}

	var resp orderProductsResponse
	if err := s.backend.Post(ctx, "service/get-table-unpaid-products", req, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}
