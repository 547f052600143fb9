package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dkrasnovs/blogspace/internal/client/forms"
	"github.com/dkrasnovs/blogspace/internal/client/models"
)

const dateLayout = "January 2, 2006"

// List renders the home page: every published post, newest first, as served
// by the API.
func (a *App) List(ctx context.Context) error {
	posts, err := a.api.ListPosts(ctx)
	if err != nil {
		a.logger.Warn(ctx, "loading posts failed", "error", err)
		printlnFn("Error loading posts. Please try again.")
		return nil
	}

	if len(posts) == 0 {
		printlnFn("No posts yet.")
		return nil
	}
	for _, post := range posts {
		printlnFn(fmt.Sprintf("[%s] %s (by %s on %s)",
			post.ID, post.Title, post.Username, post.CreatedAt.Format(dateLayout)))
	}
	return nil
}

// Show renders the post-detail page. The edit/delete affordances are only
// mentioned when the signed-in user is the author; that comparison is a UI
// convenience, the API enforces ownership on its own.
func (a *App) Show(ctx context.Context, id string) error {
	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "fetching post failed", "id", id, "error", err)
		printlnFn("Post not found. Returning to the post list.")
		return a.List(ctx)
	}

	printlnFn(post.Title)
	printlnFn(fmt.Sprintf("Posted by %s on %s", post.Username, post.CreatedAt.Format(dateLayout)))
	printlnFn("")
	printlnFn(post.Content)

	if a.ownsPost(post) {
		printlnFn("")
		printlnFn(fmt.Sprintf("This is your post: 'edit %s' and 'delete %s' are available.", post.ID, post.ID))
	}
	return nil
}

// Create runs the new-post page: signed-in gate, inline validation, then
// submission. Validation failures never reach the network. On success the
// listing renders.
func (a *App) Create(ctx context.Context) error {
	user, _ := a.session.Session()
	if user == nil {
		printlnFn("You must be logged in to create a post.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter your title", os.Stdout)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Write something deep...", os.Stdout)
	if err != nil {
		return err
	}

	if errs := (forms.PostForm{Title: title, Content: content}).Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if err := a.api.CreatePost(ctx, title, content); err != nil {
		a.logger.Warn(ctx, "creating post failed", "error", err)
		printlnFn("Failed to create post. Are you logged in?")
		return nil
	}

	printlnFn("Post published.")
	return a.List(ctx)
}

// Edit runs the edit-post page. When the post cannot be loaded, or the
// signed-in user is not its author, the flow redirects back to the listing
// without rendering the form. Empty input keeps the current value.
func (a *App) Edit(ctx context.Context, id string) error {
	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "loading post for edit failed", "id", id, "error", err)
		return a.List(ctx)
	}
	if !a.ownsPost(post) {
		return a.List(ctx)
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title (empty keeps %q)", post.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = post.Title
	}
	content, err := getMultiline(a.reader, "Enter content (empty keeps the current text)", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		content = post.Content
	}

	if errs := (forms.PostForm{Title: title, Content: content}).Validate(); !errs.Valid() {
		printFieldErrors(errs)
		return nil
	}

	if err := a.api.UpdatePost(ctx, id, title, content); err != nil {
		a.logger.Warn(ctx, "updating post failed", "id", id, "error", err)
		printlnFn("Error updating post.")
		return nil
	}

	return a.Show(ctx, id)
}

// Delete runs the delete flow off the post-detail page: a confirmation
// prompt, then the removal. On success the listing renders.
func (a *App) Delete(ctx context.Context, id string) error {
	post, err := a.api.GetPost(ctx, id)
	if err != nil {
		a.logger.Warn(ctx, "loading post for delete failed", "id", id, "error", err)
		printlnFn("Post not found.")
		return nil
	}
	if !a.ownsPost(post) {
		printlnFn("Only the author can delete this post.")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Are you sure you want to delete this post? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		return nil
	}

	if err := a.api.DeletePost(ctx, id); err != nil {
		a.logger.Warn(ctx, "deleting post failed", "id", id, "error", err)
		printlnFn("Error deleting post. Please try again.")
		return nil
	}

	printlnFn("Post deleted.")
	return a.List(ctx)
}

func (a *App) ownsPost(post *models.Post) bool {
	user, _ := a.session.Session()
	return user != nil && user.Username == post.Username
}
