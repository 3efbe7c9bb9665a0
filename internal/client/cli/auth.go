package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nicograef/jotti/internal/shared"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Login asks for username and password, exchanges them for a session
// token and adopts it.
func (a *App) Login(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Benutzername", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Passwort")
	if err != nil {
		return err
	}
	defer shared.Wipe(password)

	token, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.log.Info(ctx, "login failed", "username", username, "err", err)
		report(formLogin, err)
		return err
	}

	return a.adoptToken(ctx, token)
}

// SetPassword sets the first password of an account with the one-time
// code handed out by an admin. On success the user is signed in.
func (a *App) SetPassword(ctx context.Context, _ []string) error {
	username, err := getSimpleText(a.reader, "Benutzername", a.out)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Einmalcode", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Neues Passwort")
	if err != nil {
		return err
	}
	defer shared.Wipe(password)

	confirm, err := getPassword(a.out, "Passwort wiederholen")
	if err != nil {
		return err
	}
	defer shared.Wipe(confirm)

	if string(password) != string(confirm) {
		printlnFn(fieldError{Field: "password", Message: "Die Passwörter stimmen nicht überein."}.String())
		return errPasswordMismatch
	}

	token, err := a.auth.SetPassword(ctx, username, string(password), code)
	if err != nil {
		a.log.Info(ctx, "set password failed", "username", username, "err", err)
		report(formSetPassword, err)
		return err
	}

	return a.adoptToken(ctx, token)
}

func (a *App) adoptToken(ctx context.Context, token string) error {
	if err := a.session.ValidateAndSetToken(ctx, token); err != nil {
		a.log.Error(ctx, "backend issued an unusable token", "err", err)
		printlnFn(msgGeneric)
		return err
	}

	a.setSignedIn(true)
	claims, _ := a.session.Session(ctx)
	printlnFn(fmt.Sprintf("Angemeldet als %s (%s).", claims.Subject, claims.Role))
	return nil
}

// Logout ends the session. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		printlnFn(msgGeneric)
		return err
	}
	a.setSignedIn(false)
	printlnFn("Abgemeldet.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	claims, ok := a.session.Session(ctx)
	if !ok {
		printlnFn(msgSignInFirst)
		return errNotAllowed
	}

	left := a.session.ExpiresIn(ctx).Truncate(time.Minute)
	printlnFn(fmt.Sprintf("%s (%s), Sitzung gültig für %s", claims.Subject, claims.Role, left))
	return nil
}
