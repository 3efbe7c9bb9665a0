package services

import (
	"context"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

type AuthService interface {
	// Login exchanges credentials for a session token.
	Login(ctx context.Context, username, password string) (string, error)
	// SetPassword sets the first password of an account using the one-time
	// code handed out by an admin, and signs the user in.
	SetPassword(ctx context.Context, username, password, onetimePassword string) (string, error)
}

type authService struct {
	backend Poster
}

func NewAuthService(backend Poster) AuthService {
	return &authService{backend: backend}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var loginSchema = z.Struct(z.Shape{
	"Username": models.UsernameSchema,
	"Password": models.PasswordSchema,
})

type SetPasswordRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	OnetimePassword string `json:"onetimePassword"`
}

var setPasswordSchema = z.Struct(z.Shape{
	"Username":        models.UsernameSchema,
	"Password":        models.PasswordSchema,
	"OnetimePassword": models.OnetimePasswordSchema,
})

type tokenResponse struct {
	Token string `json:"token"`
}

var tokenResponseSchema = z.Struct(z.Shape{
	"Token": z.String().Required().Min(10),
})

func (r *tokenResponse) Validate() error {
	return validation.Struct("token response", tokenResponseSchema, r)
}

func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	req := LoginRequest{Username: username, Password: password}
	if err := validation.Struct("login", loginSchema, &req); err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := a.backend.Post(ctx, "login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (a *authService) SetPassword(ctx context.Context, username, password, onetimePassword string) (string, error) {
	req := SetPasswordRequest{Username: username, Password: password, OnetimePassword: onetimePassword}
	if err := validation.Struct("set password", setPasswordSchema, &req); err != nil {
		return "", err
	}

	var resp tokenResponse
	if err := a.backend.Post(ctx, "set-password", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}
