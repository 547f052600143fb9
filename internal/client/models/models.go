// Package models defines the wire-level records the client exchanges with
// the BlogSpace API. Both types are decoded as-is from JSON response bodies.
package models

import "time"

// User is the identity record returned by the identity-resolution endpoint.
// The API may include more fields; the client only relies on these.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Post is a published blog post. It is owned and validated by the API; the
// client never derives invariants from it beyond the author check used to
// show the edit/delete affordances.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
