package services

import (
	"context"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

// UserService covers staff account administration.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (CreatedUser, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
	ActivateUser(ctx context.Context, id int) error
	DeactivateUser(ctx context.Context, id int) error
	// ResetPassword clears the password and returns a new one-time code.
	ResetPassword(ctx context.Context, id int) (string, error)
}

type userService struct {
	backend Poster
}

func NewUserService(backend Poster) UserService {
	return &userService{backend: backend}
}

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

var createUserSchema = z.Struct(z.Shape{
	"Name":     models.UserNameSchema,
	"Username": models.UsernameSchema,
	"Role":     models.RoleSchema,
})

type UpdateUserRequest struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

var updateUserSchema = z.Struct(z.Shape{
	"ID":       models.UserIDSchema,
	"Name":     models.UserNameSchema,
	"Username": models.UsernameSchema,
	"Role":     models.RoleSchema,
})

var userIDSchema = z.Struct(z.Shape{"ID": models.UserIDSchema})

// CreatedUser carries the one-time code the new user needs to set a password.
type CreatedUser struct {
	ID              int    `json:"id"`
	OnetimePassword string `json:"onetimePassword"`
}

var createdUserSchema = z.Struct(z.Shape{
	"ID":              models.UserIDSchema,
	"OnetimePassword": models.OnetimePasswordSchema,
})

func (c *CreatedUser) Validate() error {
	return validation.Struct("created user", createdUserSchema, c)
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

func (r *usersResponse) Validate() error { return validateEach(r.Users) }

type resetPasswordResponse struct {
	OnetimePassword string `json:"onetimePassword"`
}

var resetPasswordResponseSchema = z.Struct(z.Shape{
	"OnetimePassword": models.OnetimePasswordSchema,
})

func (r *resetPasswordResponse) Validate() error {
	return validation.Struct("reset password response", resetPasswordResponseSchema, r)
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var resp usersResponse
	if err := s.backend.Post(ctx, "admin/get-all-users", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (CreatedUser, error) {
	if err := validation.Struct("new user", createUserSchema, &req); err != nil {
		return CreatedUser{}, err
	}

	var resp CreatedUser
	if err := s.backend.Post(ctx, "admin/create-user", req, &resp); err != nil {
		return CreatedUser{}, err
	}
	return resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	if err := validation.Struct("user update", updateUserSchema, &req); err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/update-user", req, nil)
}

func (s *userService) ActivateUser(ctx context.Context, id int) error {
	req, err := newIDRequest("user", userIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/activate-user", req, nil)
}

func (s *userService) DeactivateUser(ctx context.Context, id int) error {
	req, err := newIDRequest("user", userIDSchema, id)
	if err != nil {
		return err
	}
	return s.backend.Post(ctx, "admin/deactivate-user", req, nil)
}

func (s *userService) ResetPassword(ctx context.Context, id int) (string, error) {
	req, err := newIDRequest("user", userIDSchema, id)
	if err != nil {
		return "", err
	}

	var resp resetPasswordResponse
	if err := s.backend.Post(ctx, "admin/reset-password", req, &resp); err != nil {
		return "", err
	}
	return resp.OnetimePassword, nil
}
