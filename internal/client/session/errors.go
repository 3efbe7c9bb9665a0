package session

import "errors"

var (
	ErrInvalidToken = errors.New("invalid session token")

	ErrTokenDecode  = errors.New("token cannot be decoded")
	ErrTokenSchema  = errors.New("token claims do not match schema")
	ErrTokenExpired = errors.New("token expired")
)
