// Package forms holds the client-side validation the pages run before any
// request leaves the process. A failed validation blocks submission; it is
// shown inline per field and never reaches the network.
package forms

import (
	"net/mail"
	"unicode/utf8"
)

const (
	minPasswordLen = 6
	maxTitleLen    = 255
)

// Errors maps a field name to its validation message. An empty map means the
// form is valid.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

// LoginForm mirrors the login page fields.
type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() Errors {
	errs := Errors{}
	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)
	return errs
}

// SignupForm mirrors the sign-up page fields, including the password
// confirmation cross-check.
type SignupForm struct {
	Email           string
	Password        string
	ConfirmPassword string
}

func (f SignupForm) Validate() Errors {
	errs := Errors{}
	validateEmail(errs, f.Email)
	validatePassword(errs, f.Password)
	if _, ok := errs["password"]; !ok && f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords don't match"
	}
	return errs
}

// PostForm mirrors the create/edit post fields.
type PostForm struct {
	Title   string
	Content string
}

func (f PostForm) Validate() Errors {
	errs := Errors{}
	switch {
	case f.Title == "":
		errs["title"] = "Title is required"
	case utf8.RuneCountInString(f.Title) > maxTitleLen:
		errs["title"] = "Title is too long"
	}
	if f.Content == "" {
		errs["content"] = "Content is required"
	}
	return errs
}

func validateEmail(errs Errors, email string) {
	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Invalid email address"
	}
}

func validatePassword(errs Errors, password string) {
	if utf8.RuneCountInString(password) < minPasswordLen {
		errs["password"] = "Password must be at least 6 characters"
	}
}
