package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	msgSignInFirst = "Bitte zuerst anmelden."
	msgForbidden   = "Keine Berechtigung."
	msgInvalidID   = "Ungültige ID."
)

var (
	errNotAllowed = errors.New("not allowed")
	errInvalidID  = errors.New("invalid id")
)

// access is who may run a command.
type access int

const (
	accessPublic access = iota
	accessSignedIn
	accessAdmin
	// accessService also admits admins.
	accessService
)

type command struct {
	name   string
	usage  string
	access access
	run    func(a *App, ctx context.Context, args []string) error
}

func commandTable() []command {
	return []command{
		{name: "login", usage: "anmelden", access: accessPublic, run: (*App).Login},
		{name: "set-password", usage: "erstes Passwort mit Einmalcode festlegen", access: accessPublic, run: (*App).SetPassword},
		{name: "logout", usage: "abmelden", access: accessPublic, run: (*App).Logout},
		{name: "whoami", usage: "aktuelle Sitzung anzeigen", access: accessSignedIn, run: (*App).WhoAmI},

		{name: "tables", usage: "Tische anzeigen", access: accessSignedIn, run: (*App).Tables},

		{name: "users", usage: "Benutzer anzeigen", access: accessAdmin, run: (*App).Users},
		{name: "user-add", usage: "Benutzer anlegen", access: accessAdmin, run: (*App).AddUser},
		{name: "user-edit", usage: "user-edit <id>", access: accessAdmin, run: (*App).EditUser},
		{name: "user-activate", usage: "user-activate <id>", access: accessAdmin, run: (*App).ActivateUser},
		{name: "user-deactivate", usage: "user-deactivate <id>", access: accessAdmin, run: (*App).DeactivateUser},
		{name: "user-reset", usage: "user-reset <id> (neuer Einmalcode)", access: accessAdmin, run: (*App).ResetPassword},
		{name: "products", usage: "Produkte anzeigen", access: accessAdmin, run: (*App).Products},
		{name: "product-add", usage: "Produkt anlegen", access: accessAdmin, run: (*App).AddProduct},
		{name: "product-edit", usage: "product-edit <id>", access: accessAdmin, run: (*App).EditProduct},
		{name: "product-activate", usage: "product-activate <id>", access: accessAdmin, run: (*App).ActivateProduct},
		{name: "product-deactivate", usage: "product-deactivate <id>", access: accessAdmin, run: (*App).DeactivateProduct},
		{name: "table-add", usage: "Tisch anlegen", access: accessAdmin, run: (*App).AddTable},
		{name: "table-edit", usage: "table-edit <id>", access: accessAdmin, run: (*App).EditTable},
		{name: "table-activate", usage: "table-activate <id>", access: accessAdmin, run: (*App).ActivateTable},
		{name: "table-deactivate", usage: "table-deactivate <id>", access: accessAdmin, run: (*App).DeactivateTable},

		{name: "menu", usage: "Speisekarte anzeigen", access: accessService, run: (*App).Menu},
		{name: "order", usage: "order <tisch>", access: accessService, run: (*App).Order},
		{name: "pay", usage: "pay <tisch>", access: accessService, run: (*App).Pay},
		{name: "balance", usage: "balance <tisch>", access: accessService, run: (*App).TableBalance},
		{name: "history", usage: "history <tisch>", access: accessService, run: (*App).History},
	}
}

// allowed checks c against the current session and prints why it is not.
func (a *App) allowed(ctx context.Context, c command) error {
	if c.access == accessPublic {
		return nil
	}

	if !a.session.IsAuthenticated(ctx) {
		a.setSignedIn(false)
		printlnFn(msgSignInFirst)
		return errNotAllowed
	}

	switch {
	case c.access == accessAdmin && !a.session.IsAdmin(ctx),
		c.access == accessService && !a.session.IsService(ctx) && !a.session.IsAdmin(ctx):
		printlnFn(msgForbidden)
		return errNotAllowed
	}
	return nil
}

func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	for _, c := range a.commands {
		if c.name != name {
			continue
		}
		if err := a.allowed(ctx, c); err != nil {
			return err
		}
		return c.run(a, ctx, args)
	}
	return errUnknownCommand
}

// help lists the commands the current session may run.
func (a *App) help(ctx context.Context) string {
	signedIn := a.session.IsAuthenticated(ctx)
	admin := signedIn && a.session.IsAdmin(ctx)
	service := signedIn && (admin || a.session.IsService(ctx))

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Verfügbare Befehle:")
	for _, c := range a.commands {
		switch c.access {
		case accessSignedIn:
			if !signedIn {
				continue
			}
		case accessAdmin:
			if !admin {
				continue
			}
		case accessService:
			if !service {
				continue
			}
		}
		fmt.Fprintf(tw, "  %s\t%s\n", c.name, c.usage)
	}
	fmt.Fprintf(tw, "  %s\t%s\n", "exit", "beenden")
	_ = tw.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// intArg reads the numeric first argument, prompting for it when absent.
func (a *App) intArg(args []string, prompt string) (int, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = v
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		printlnFn(msgInvalidID)
		return 0, errInvalidID
	}
	return id, nil
}
