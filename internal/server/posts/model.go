package posts

import "time"

// Post carries the author's username alongside the row so list and detail
// responses do not need a second lookup.
type Post struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	Username  string
}
