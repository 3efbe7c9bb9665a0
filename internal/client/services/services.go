// Package services wraps the backend endpoints in typed, validated calls.
//
// Every method validates its request locally first and returns a
// *validation.Error without touching the network when that fails. Errors
// from the gateway are passed through unchanged so callers can inspect
// backend codes.
package services

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

// Poster is the part of the gateway the services need.
type Poster interface {
	Post(ctx context.Context, endpoint string, body any, out gateway.Shape) error
}

type validatable interface {
	Validate() error
}

func validateEach[T validatable](items []T) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// idRequest is the body of every activate/deactivate/reset style call.
type idRequest struct {
	ID int `json:"id"`
}

func newIDRequest(subject string, schema *z.StructSchema, id int) (idRequest, error) {
	req := idRequest{ID: id}
	return req, validation.Struct(subject, schema, &req)
}

type idResponse struct {
	ID int `json:"id"`
}

var idResponseSchema = z.Struct(z.Shape{
	"ID": z.Int().Required().GTE(1),
})

func (r *idResponse) Validate() error {
	return validation.Struct("id response", idResponseSchema, r)
}

// tableRequest addresses everything that is looked up per table.
type tableRequest struct {
	TableID int `json:"tableId"`
}

var tableRequestSchema = z.Struct(z.Shape{
	"TableID": models.TableIDSchema,
})

func newTableRequest(tableID int) (tableRequest, error) {
	req := tableRequest{TableID: tableID}
	return req, validation.Struct("table request", tableRequestSchema, &req)
}
