package models

import (
	"time"

	z "github.com/Oudwins/zog"
	"github.com/google/uuid"

	"github.com/nicograef/jotti/internal/validation"
)

// OrderProduct is one line of an order or payment. Name and price are a
// snapshot taken when the line was ordered.
type OrderProduct struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NetPriceCents int    `json:"netPriceCents"`
	Quantity      int    `json:"quantity"`
}

var OrderProductSchema = z.Struct(z.Shape{
	"ID": ProductIDSchema,
	"Name": z.String().Required(z.Message(msgRequired)).
		Max(100, z.Message("Der Name ist zu lang.")),
	"NetPriceCents": NetPriceCentsSchema,
	"Quantity": z.Int().Required(z.Message("Die Menge muss mindestens 1 sein.")).
		GTE(1, z.Message("Die Menge muss mindestens 1 sein.")),
})

func (p OrderProduct) Validate() error {
	return validation.Struct("order product", OrderProductSchema, &p)
}

// OrderProductsSchema requires at least one line.
var OrderProductsSchema = z.Slice(OrderProductSchema).
	Required(z.Message("Mindestens ein Produkt ist erforderlich.")).
	Min(1, z.Message("Mindestens ein Produkt ist erforderlich."))

var totalCentsSchema = z.Int().GTE(0, z.Message("Der Betrag darf nicht negativ sein."))

type Order struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             int            `json:"userId"`
	TableID            int            `json:"tableId"`
	Products           []OrderProduct `json:"products"`
	TotalNetPriceCents int            `json:"totalNetPriceCents"`
	PlacedAt           time.Time      `json:"placedAt"`
}

var OrderSchema = z.Struct(z.Shape{
	"UserID":             UserIDSchema,
	"TableID":            TableIDSchema,
	"Products":           OrderProductsSchema,
	"TotalNetPriceCents": totalCentsSchema,
	"PlacedAt":           createdAtSchema,
})

func (o Order) Validate() error {
	if o.ID == uuid.Nil {
		return validation.Field("order", "ID", "Ungültige Bestell-ID.")
	}
	return validation.Struct("order", OrderSchema, &o)
}

type Payment struct {
	ID                uuid.UUID      `json:"id"`
	UserID            int            `json:"userId"`
	TableID           int            `json:"tableId"`
	Products          []OrderProduct `json:"products"`
	TotalPaymentCents int            `json:"totalPaymentCents"`
	RegisteredAt      time.Time      `json:"registeredAt"`
}

var PaymentSchema = z.Struct(z.Shape{
	"UserID":            UserIDSchema,
	"TableID":           TableIDSchema,
	"Products":          OrderProductsSchema,
	"TotalPaymentCents": totalCentsSchema,
	"RegisteredAt":      createdAtSchema,
})

func (p Payment) Validate() error {
	if p.ID == uuid.Nil {
		return validation.Field("payment", "ID", "Ungültige Zahlungs-ID.")
	}
	return validation.Struct("payment", PaymentSchema, &p)
}
