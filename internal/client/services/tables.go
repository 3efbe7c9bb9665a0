package services

import (
	"context"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

type TableService interface {
	GetAllTables(ctx context.Context) ([]models.Table, error)
	CreateTable(ctx context.Context, name string) (int, error)
	UpdateTable(ctx context.Context, id int, name string) error
	ActivateTable(ctx context.Context, id int) error
	DeactivateTable(ctx context.Context, id int) error
	GetActiveTables(ctx context.Context) ([]models.TablePublic, error)
	GetTable(ctx context.Context, id int) (models.TablePublic, error)
}

type tableService struct {
	backend Poster
}

func NewTableService(backend Poster) TableService {
	return &tableService{backend: backend}
}

type CreateTableRequest struct {
	Name string `json:"name"`
}

var createTableSchema = z.Struct(z.Shape{
	"Name": models.TableNameSchema,
})

type UpdateTableRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var updateTableSchema = z.Struct(z.Shape{
	"ID":   models.TableIDSchema,
	"Name": models.TableNameSchema,
})

var tableIDSchema = z.Struct(z.Shape{"ID": models.TableIDSchema})

type tablesResponse struct {
	Tables []models.Table `json:"tables"`
}

func (r *tablesResponse) Validate() error { return validateEach(r.Tables) }

type publicTablesResponse struct {
	Tables []models.TablePublic `json:"tables"`
}

func (r *publicTablesResponse) Validate() error { return validateEach(r.Tables) }

type tableResponse struct {
	Table models.TablePublic `json:"table"`
}

func (r *tableResponse) Validate() error { return r.Table.Validate() }

func (s *tableService) GetAllTables(ctx context.Context) ([]models.Table, error) {
	var resp tablesResponse
	if err := s.backend.Post(ctx, "admin/get-all-tables", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (s *tableService) CreateTable(ctx context.Context, name string) (int, error) {
	req := CreateTableRequest{Name: name}
	if err := validation.Struct("new table", createTableSchema, &req); err != nil {
		return 0, err
	}

	var resp idResponse
	if err := s.backend.Post(ctx, "admin/create-table", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (s *tableService) UpdateTable(ctx context.Context, id int, name string) error {
	req := UpdateTableRequest{ID: id, Name: name}
	if err := validation.Struct("table update", updateTableSchema, &req); err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/update-table", req, nil)
}

func (s *tableService) ActivateTable(ctx context.Context, id int) error {
	req, err := newIDRequest("table", tableIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/activate-table", req, nil)
}

func (s *tableService) DeactivateTable(ctx context.Context, id int) error {
	req, err := newIDRequest("table", tableIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/deactivate-table", req, nil)
}

func (s *tableService) GetActiveTables(ctx context.Context) ([]models.TablePublic, error) {
	var resp publicTablesResponse
	if err := s.backend.Post(ctx, "service/get-active-tables", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (s *tableService) GetTable(ctx context.Context, id int) (models.TablePublic, error) {
	req, err := newIDRequest("table", tableIDSchema, id)
	if err != nil {
		return models.TablePublic{}, err
	}

	var resp tableResponse
	if err := s.backend.Post(ctx, "service/get-table", req, &resp); err != nil {
		return models.TablePublic{}, err
	}
	return resp.Table, nil
}
