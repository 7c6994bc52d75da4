package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/makanscan/internal/client/api"
)

var errInvalidCredentials = &userError{"Invalid credentials"}

// Login prompts for credentials and signs in. A 401 is reported as invalid
// credentials; other failures keep the backend's message.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}

	form := loginForm{Email: email, Password: password}
	if err := form.Validate(); err != nil {
		return err
	}

	if err := a.session.Login(ctx, form.Email, form.Password); err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		if errors.Is(err, api.ErrUnauthorized) {
			return errInvalidCredentials
		}
		return err
	}

	if u := a.session.Snapshot().User; u != nil {
		a.printf("Welcome back, %s!\n", u.Name)
	}
	return nil
}

// Register prompts for the account fields, validates them and creates the
// account. A successful registration also signs the user in.
func (a *App) Register(ctx context.Context, _ []string) error {
	var (
		form registerForm
		err  error
	)
	if form.Name, err = GetSimpleText(a.reader, "Enter name", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword(a.reader, "Enter password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = GetPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return err
	}
	form = form.normalize()

	if err := a.session.Register(ctx, form.Name, form.Email, form.Password); err != nil {
		a.logger.Warn(ctx, "registration failed", "error", err)
		return err
	}

	a.printf("Welcome, %s!\n", form.Name)
	return nil
}

// Logout asks for confirmation, then ends the session. The in-memory
// session is cleared even when the stored one could not be removed.
func (a *App) Logout(ctx context.Context, _ []string) error {
	ok, err := Confirm(a.reader, "Are you sure you want to logout?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the signed-in user and when the token runs out.
func (a *App) WhoAmI(_ context.Context, _ []string) error {
	st := a.session.Snapshot()
	if st.User == nil {
		a.printf("Not logged in.\n")
		return nil
	}

	a.printf("%s <%s>\n", st.User.Name, st.User.Email)
	a.printf("id: %s\n", st.User.ID)
	if st.User.Phone != "" {
		a.printf("phone: %s\n", st.User.Phone)
	}

	exp, ok := a.session.Expiry()
	switch {
	case !ok:
		a.printf("token expiry: unknown\n")
	case exp.Before(a.now()):
		a.printf("token expired at %s\n", exp.Local().Format(timeLayout))
	default:
		a.printf("token expires at %s\n", exp.Local().Format(timeLayout))
	}
	return nil
}

// Refresh re-reads the stored session. A 401 on any earlier request wipes
// the stored session; this is where the client notices and signs out.
func (a *App) Refresh(ctx context.Context, _ []string) error {
	if a.session.Revalidate(ctx) {
		a.printf("Session is valid.\n")
		return nil
	}
	a.printf("Session expired, please log in again.\n")
	return nil
}
