package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

var beer = models.OrderProduct{ID: 1, Name: "Bier", NetPriceCents: 450, Quantity: 2}

// An empty order is rejected before anything is sent.
func TestOrderService_PlaceOrder_EmptyProducts(t *testing.T) {
	fp := newFakePoster(nil)
	svc := NewOrderService(fp)

	for _, products := range [][]models.OrderProduct{nil, {}} {
		err := svc.PlaceOrder(context.Background(), 1, products)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.Has("Products"))
	}
	assert.Empty(t, fp.calls)
}

func TestOrderService_PlaceOrder(t *testing.T) {
	fp := newFakePoster(nil)

	require.NoError(t, NewOrderService(fp).PlaceOrder(context.Background(), 4, []models.OrderProduct{beer}))

	call := fp.last()
	assert.Equal(t, "service/place-order", call.endpoint)
	assert.False(t, call.withOut)
	assert.Equal(t, float64(4), call.body["tableId"])
	lines := call.body["products"].([]any)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(2), lines[0].(map[string]any)["quantity"])
}

func TestOrderService_PlaceOrder_InvalidLine(t *testing.T) {
	fp := newFakePoster(nil)
	zero := beer
	zero.Quantity = 0

	err := NewOrderService(fp).PlaceOrder(context.Background(), 4, []models.OrderProduct{zero})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("Products"))
	assert.Empty(t, fp.calls)
}

func TestOrderService_RegisterPayment(t *testing.T) {
	fp := newFakePoster(nil)
	svc := NewOrderService(fp)

	require.NoError(t, svc.RegisterPayment(context.Background(), 4, []models.OrderProduct{beer}))
	assert.Equal(t, "service/register-payment", fp.last().endpoint)

	require.Error(t, svc.RegisterPayment(context.Background(), 0, []models.OrderProduct{beer}))
	require.Error(t, svc.RegisterPayment(context.Background(), 4, nil))
	assert.Len(t, fp.calls, 1)
}

func TestOrderService_History(t *testing.T) {
	fp := newFakePoster(map[string]string{
		"service/get-table-orders": `{"orders":[{"id":"4f9c1f7e-8d43-4d8b-9d7c-3c1c2f1e2a10","userId":1,"tableId":4,
			"products":[{"id":1,"name":"Bier","netPriceCents":450,"quantity":2}],"totalNetPriceCents":900,"placedAt":"2025-05-01T18:00:00Z"}]}`,
		"service/get-table-payments": `{"payments":[{"id":"0b6a9a8e-2d3f-4c1e-8f47-9a0d1c2b3e4f","userId":1,"tableId":4,
			"products":[{"id":1,"name":"Bier","netPriceCents":450,"quantity":1}],"totalPaymentCents":450,"registeredAt":"2025-05-01T19:00:00Z"}]}`,
		"service/get-table-balance":         `{"balanceCents":450}`,
		"service/get-table-unpaid-products": `{"products":[{"id":1,"name":"Bier","netPriceCents":450,"quantity":1}]}`,
	})
	svc := NewOrderService(fp)
	ctx := context.Background()

	orders, err := svc.GetTableOrders(ctx, 4)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, map[string]any{"tableId": float64(4)}, fp.last().body)

	payments, err := svc.GetTablePayments(ctx, 4)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	balance, err := svc.GetTableBalance(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 450, balance)
	assert.Equal(t, balance, models.Balance(orders, payments))

	unpaid, err := svc.GetTableUnpaidProducts(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, models.UnpaidProducts(orders, payments), unpaid)
}

func TestOrderService_ZeroBalanceIsValid(t *testing.T) {
	fp := newFakePoster(map[string]string{"service/get-table-balance": `{"balanceCents":0}`})

	balance, err := NewOrderService(fp).GetTableBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestOrderService_ShapeErrors(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		body     string
		call     func(OrderService) error
	}{
		{
			name:     "missing balance",
			endpoint: "service/get-table-balance",
			body:     `{}`,
			call: func(s OrderService) error {
				_, err := s.GetTableBalance(context.Background(), 1)
				return err
			},
		},
		{
			name:     "fractional balance",
			endpoint: "service/get-table-balance",
			body:     `{"balanceCents":1.5}`,
			call: func(s OrderService) error {
				_, err := s.GetTableBalance(context.Background(), 1)
				return err
			},
		},
		{
			name:     "order without products",
			endpoint: "service/get-table-orders",
			body:     `{"orders":[{"id":"4f9c1f7e-8d43-4d8b-9d7c-3c1c2f1e2a10","userId":1,"tableId":4,"products":[],"totalNetPriceCents":0,"placedAt":"2025-05-01T18:00:00Z"}]}`,
			call: func(s OrderService) error {
				_, err := s.GetTableOrders(context.Background(), 1)
				return err
			},
		},
		{
			name:     "payment with bad uuid",
			endpoint: "service/get-table-payments",
			body:     `{"payments":[{"id":"nope","userId":1,"tableId":4,"products":[{"id":1,"name":"Bier","netPriceCents":450,"quantity":1}],"totalPaymentCents":450,"registeredAt":"2025-05-01T19:00:00Z"}]}`,
			call: func(s OrderService) error {
				_, err := s.GetTablePayments(context.Background(), 1)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := newFakePoster(map[string]string{tt.endpoint: tt.body})
			err := tt.call(NewOrderService(fp))

			var se *gateway.ResponseShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.endpoint, se.Endpoint)
		})
	}
}

func TestOrderService_InvalidTableIDNeverCallsBackend(t *testing.T) {
	fp := newFakePoster(nil)
	svc := NewOrderService(fp)
	ctx := context.Background()

	_, err := svc.GetTableOrders(ctx, 0)
	require.Error(t, err)
	_, err = svc.GetTablePayments(ctx, 0)
	require.Error(t, err)
	_, err = svc.GetTableBalance(ctx, 0)
	require.Error(t, err)
	_, err = svc.GetTableUnpaidProducts(ctx, 0)
	require.Error(t, err)
	assert.Empty(t, fp.calls)
}
