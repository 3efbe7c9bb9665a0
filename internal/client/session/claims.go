package session

import (
	"encoding/json"
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/validation"
)

// Issuer is the only accepted "iss" claim.
const Issuer = "jotti"

// Claims is the decoded payload of a session token.
type Claims struct {
	Issuer    string
	Subject   string
	Role      models.Role
	IssuedAt  int
	ExpiresAt int
}

func (c Claims) Expiry() time.Time {
	return time.Unix(int64(c.ExpiresAt), 0)
}

var claimsSchema = z.Struct(z.Shape{
	"Issuer":    z.String().Required().OneOf([]string{Issuer}, z.Message("unexpected issuer")),
	"Subject":   z.String().Required(),
	"Role":      models.RoleSchema,
	"IssuedAt":  z.Int().GTE(0),
	"ExpiresAt": z.Int().GTE(0),
})

// decode reads the token payload without checking the signature; the
// backend does that on every request.
func decode(raw string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser(jwt.WithJSONNumber()).ParseUnverified(raw, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenDecode, err)
	}

	var (
		c   Claims
		err error
	)
	if c.Issuer, err = stringClaim(mc, "iss"); err != nil {
		return Claims{}, err
	}
	if c.Subject, err = stringClaim(mc, "sub"); err != nil {
		return Claims{}, err
	}
	role, err := stringClaim(mc, "role")
	if err != nil {
		return Claims{}, err
	}
	c.Role = models.Role(role)
	if c.IssuedAt, err = intClaim(mc, "iat"); err != nil {
		return Claims{}, err
	}
	if c.ExpiresAt, err = intClaim(mc, "exp"); err != nil {
		return Claims{}, err
	}

	if err := validation.Struct("token claims", claimsSchema, &c); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrTokenSchema, err)
	}
	return c, nil
}

func stringClaim(mc jwt.MapClaims, name string) (string, error) {
	v, ok := mc[name]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrTokenSchema, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a string", ErrTokenSchema, name)
	}
	return s, nil
}

// intClaim accepts only integral JSON numbers.
func intClaim(mc jwt.MapClaims, name string) (int, error) {
	v, ok := mc[name]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrTokenSchema, name)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number", ErrTokenSchema, name)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrTokenSchema, name)
	}
	return int(i), nil
}
