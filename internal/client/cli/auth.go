package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkrasnovs/blogspace/internal/client/api"
	"github.com/dkrasnovs/blogspace/internal/client/forms"
)

// getSimpleText, getPassword, and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for credentials and authenticates against the remote API.
//
// Validation failures are shown inline and block submission. A rejected
// login surfaces a single user-visible message and stays on the page. On
// success the token is persisted, the identity is resolved and stored in
// the session, and the listing renders.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	if errs := (forms.LoginForm{Email: email, Password: password}).Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		printlnFn("Invalid credentials. Please try again.")
		return nil
	}
	if err := a.session.SaveToken(token); err != nil {
		a.logger.Error(ctx, "failed to persist credential", "error", err)
	}

	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "identity resolution failed", "error", err)
		printlnFn("Signed in, but fetching your profile failed. Try again.")
		return nil
	}
	a.session.SetUser(user)

	printlnFn("Welcome back, " + user.Username + "!")
	return a.List(ctx)
}

// Signup registers a new account and then runs the login flow with the same
// credentials: registration must succeed before the token is requested, and
// the token must be persisted before the identity is resolved.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	form := forms.SignupForm{Email: email, Password: password, ConfirmPassword: confirm}
	if errs := form.Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if err := a.api.Signup(ctx, email, email, password); err != nil {
		a.logger.Warn(ctx, "signup failed", "error", err)
		var se *api.StatusError
		if errors.As(err, &se) && se.Detail != "" {
			printlnFn(se.Detail)
		} else {
			printlnFn("Signup failed. Please try again.")
		}
		return nil
	}

	token, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "post-signup login failed", "error", err)
		printlnFn("Error signing up. Please try again.")
		return nil
	}
	if err := a.session.SaveToken(token); err != nil {
		a.logger.Error(ctx, "failed to persist credential", "error", err)
	}

	user, err := a.api.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "identity resolution failed", "error", err)
		printlnFn("Error signing up. Please try again.")
		return nil
	}
	a.session.SetUser(user)

	printlnFn("Welcome to BlogSpace, " + user.Username + "!")
	return a.List(ctx)
}

// Logout removes the persisted credential and resets the session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.SignOut(); err != nil {
		a.logger.Error(ctx, "sign-out failed", "error", err)
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// WhoAmI shows the signed-in identity, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	user, loading := a.session.Session()
	switch {
	case loading:
		printlnFn("Still resolving your session...")
	case user == nil:
		printlnFn("Not signed in.")
	default:
		printlnFn(user.Username + " <" + user.Email + ">")
	}
	return nil
}
