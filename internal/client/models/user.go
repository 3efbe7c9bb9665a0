package models

import (
	"regexp"
	"time"

	z "github.com/Oudwins/zog"

	"github.com/nicograef/jotti/internal/validation"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleService Role = "service"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9]+$`)

var (
	UserIDSchema = idSchema("Ungültige Benutzer-ID.")

	UserNameSchema = z.String().Trim().Required(z.Message(msgRequired)).
			Min(5, z.Message("Das sieht nicht nach einem echten Namen aus.")).
			Max(50, z.Message("Der Name ist zu lang."))

	UsernameSchema = z.String().Trim().Required(z.Message(msgRequired)).
			Min(3, z.Message("Benutzername muss mindestens 3 Zeichen lang sein.")).
			Max(20, z.Message("Benutzername darf maximal 20 Zeichen lang sein.")).
			Match(usernamePattern, z.Message("Benutzername darf nur aus Kleinbuchstaben und Zahlen bestehen."))

	RoleSchema = z.StringLike[Role]().Required(z.Message(msgRequired)).OneOf(
		[]Role{RoleAdmin, RoleService},
		z.Message("Unbekannte Rolle."),
	)
)

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

var UserSchema = z.Struct(z.Shape{
	"ID":        UserIDSchema,
	"Name":      UserNameSchema,
	"Username":  UsernameSchema,
	"Role":      RoleSchema,
	"Status":    StatusSchema,
	"CreatedAt": createdAtSchema,
})

func (u User) Validate() error {
	return validation.Struct("user", UserSchema, &u)
}
