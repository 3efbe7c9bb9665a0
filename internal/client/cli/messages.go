package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/validation"
)

const msgGeneric = "Ein Fehler ist aufgetreten. Bitte versuche es erneut."

// form names the input a failed call came from; the same backend code
// means different things on different forms.
type form string

const (
	formLogin       form = "login"
	formSetPassword form = "set-password"
	formUser        form = "user"
	formProduct     form = "product"
	formTable       form = "table"
	formOrder       form = "order"
)

// fieldError is one message shown to the user. Field is empty for
// messages that belong to the whole form.
type fieldError struct {
	Field   string
	Message string
}

func (f fieldError) String() string {
	if f.Field == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: %s", fieldLabel(f.Field), f.Message)
}

type codeKey struct {
	form form
	code string
}

var codeMessages = map[codeKey][]fieldError{
	{formLogin, "invalid_credentials"}: {
		{Field: "username", Message: "Benutzername oder Passwort ungültig."},
		{Field: "password", Message: "Benutzername oder Passwort ungültig."},
	},
	{formLogin, "no_password_set"}: {
		{Field: "username", Message: "Für dieses Konto wurde noch kein Passwort festgelegt."},
	},
	{formLogin, "user_inactive"}: {
		{Field: "username", Message: "Dieses Konto ist deaktiviert."},
	},
	{formSetPassword, "invalid_credentials"}: {
		{Field: "username", Message: "Benutzername oder Code ungültig."},
		{Field: "onetimePassword", Message: "Benutzername oder Code ungültig."},
	},
	{formSetPassword, "already_has_password"}: {
		{Field: "password", Message: "Dieses Konto hat bereits ein Passwort festgelegt."},
	},
	{formSetPassword, "user_inactive"}: {
		{Field: "username", Message: "Dieses Konto ist deaktiviert."},
	},
	{formUser, "username_already_exists"}: {
		{Field: "username", Message: "Dieser Benutzername ist bereits vergeben."},
	},
	{formUser, "user_not_found"}: {
		{Message: "Benutzer nicht gefunden."},
	},
	{formProduct, "product_already_exists"}: {
		{Field: "name", Message: "Dieser Name ist bereits vergeben."},
	},
	{formProduct, "product_not_found"}: {
		{Message: "Produkt nicht gefunden."},
	},
	{formTable, "table_already_exists"}: {
		{Field: "name", Message: "Dieser Name ist bereits vergeben."},
	},
	{formTable, "table_not_found"}: {
		{Message: "Tisch nicht gefunden."},
	},
	{formOrder, "table_not_found"}: {
		{Message: "Tisch nicht gefunden."},
	},
	{formOrder, "product_not_found"}: {
		{Message: "Produkt nicht gefunden."},
	},
}

var labels = map[string]string{
	"username":        "Benutzername",
	"password":        "Passwort",
	"onetimepassword": "Einmalcode",
	"name":            "Name",
	"role":            "Rolle",
	"id":              "ID",
	"description":     "Beschreibung",
	"netpricecents":   "Nettopreis",
	"category":        "Kategorie",
	"tableid":         "Tisch",
	"products":        "Produkte",
}

// fieldLabel translates a field path such as "Products[0].Quantity" by its
// leading segment.
func fieldLabel(field string) string {
	head := strings.ToLower(field)
	if i := strings.IndexAny(head, ".["); i >= 0 {
		head = head[:i]
	}
	if l, ok := labels[head]; ok {
		return l
	}
	return field
}

// describe maps err to the messages shown for f.
func describe(f form, err error) []fieldError {
	if err == nil {
		return nil
	}

	var ve *validation.Error
	if errors.As(err, &ve) {
		var out []fieldError
		for _, field := range ve.Fields() {
			for _, msg := range ve.Issues[field] {
				out = append(out, fieldError{Field: field, Message: msg})
			}
		}
		if len(out) > 0 {
			return out
		}
	}

	if code := gateway.Code(err); code != "" {
		if msgs, ok := codeMessages[codeKey{form: f, code: code}]; ok {
			return msgs
		}
	}

	return []fieldError{{Message: msgGeneric}}
}

// report prints describe's messages, one per line.
func report(f form, err error) {
	for _, fe := range describe(f, err) {
		printlnFn(fe.String())
	}
}
