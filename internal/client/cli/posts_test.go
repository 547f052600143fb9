package cli

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/dkrasnovs/blogspace/internal/client/models"
)

var testPostDate = time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)

func TestList_RendersPosts(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{posts: []models.Post{
		{ID: "p1", Title: "Hello", Username: "alice", CreatedAt: testPostDate},
		{ID: "p2", Title: "Second", Username: "bob", CreatedAt: testPostDate},
	}}
	a := newTestApp(t, f, nil)

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(*lines) != 2 {
		t.Fatalf("want 2 lines, got %v", *lines)
	}
	if !strings.Contains((*lines)[0], "March 14, 2024") {
		t.Fatalf("date not rendered in long form: %q", (*lines)[0])
	}
}

func TestList_Empty(t *testing.T) {
	lines := mutePrintln(t)
	a := newTestApp(t, &fakeAPI{}, nil)

	if err := a.List(context.Background()); err != nil {
		t.Fatalf("List err: %v", err)
	}
	if !slices.Contains(*lines, "No posts yet.") {
		t.Fatalf("got %v", *lines)
	}
}

func TestShow_OwnerSeesAffordances(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Mine", Content: "body", Username: "alice", CreatedAt: testPostDate}}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	if err := a.Show(context.Background(), "p1"); err != nil {
		t.Fatalf("Show err: %v", err)
	}
	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, "edit p1") || !strings.Contains(joined, "delete p1") {
		t.Fatalf("owner affordances missing:\n%s", joined)
	}
}

func TestShow_VisitorSeesNoAffordances(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Theirs", Content: "body", Username: "alice", CreatedAt: testPostDate}}
	a := newTestApp(t, f, nil)

	if err := a.Show(context.Background(), "p1"); err != nil {
		t.Fatalf("Show err: %v", err)
	}
	if strings.Contains(strings.Join(*lines, "\n"), "edit p1") {
		t.Fatalf("affordances shown to a visitor: %v", *lines)
	}
}

func TestShow_MissingPostFallsBackToList(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{getErr: errors.New("404")}
	a := newTestApp(t, f, nil)

	if err := a.Show(context.Background(), "nope"); err != nil {
		t.Fatalf("Show err: %v", err)
	}
	want := []string{"get nope", "list"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestCreate_ValidationBlocksSubmission(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "") // empty title
	stubMultiline(t, "some content")

	if err := a.Create(context.Background()); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("invalid form must not reach the API, got calls %v", f.calls)
	}
	if !slices.Contains(*lines, "title: Title is required") {
		t.Fatalf("got %v", *lines)
	}
}

func TestCreate_RequiresSignIn(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{}
	a := newTestApp(t, f, nil)

	if err := a.Create(context.Background()); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("signed-out create must not reach the API, got %v", f.calls)
	}
	if !slices.Contains(*lines, "You must be logged in to create a post.") {
		t.Fatalf("got %v", *lines)
	}
}

func TestCreate_SuccessRendersList(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "A title")
	stubMultiline(t, "Deep thoughts.")

	if err := a.Create(context.Background()); err != nil {
		t.Fatalf("Create err: %v", err)
	}
	want := []string{"create A title", "list"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestEdit_NonOwnerRedirectsToList(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Theirs", Content: "body", Username: "alice"}}
	a := newTestApp(t, f, &models.User{Username: "mallory"})

	if err := a.Edit(context.Background(), "p1"); err != nil {
		t.Fatalf("Edit err: %v", err)
	}
	// No form, no update: straight back to the listing.
	want := []string{"get p1", "list"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestEdit_EmptyInputKeepsCurrentValues(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Old title", Content: "Old content", Username: "alice", CreatedAt: testPostDate}}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "")
	stubMultiline(t, "")

	if err := a.Edit(context.Background(), "p1"); err != nil {
		t.Fatalf("Edit err: %v", err)
	}
	want := []string{"get p1", "update p1 Old title", "get p1"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestEdit_SuccessRendersDetail(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Old", Content: "Old content", Username: "alice", CreatedAt: testPostDate}}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "New title")
	stubMultiline(t, "New content")

	if err := a.Edit(context.Background(), "p1"); err != nil {
		t.Fatalf("Edit err: %v", err)
	}
	want := []string{"get p1", "update p1 New title", "get p1"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestDelete_Confirmed(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Mine", Username: "alice"}}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "y")

	if err := a.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	want := []string{"get p1", "delete p1", "list"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestDelete_Declined(t *testing.T) {
	mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Mine", Username: "alice"}}
	a := newTestApp(t, f, &models.User{Username: "alice"})

	stubText(t, "")

	if err := a.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	want := []string{"get p1"}
	if !slices.Equal(f.calls, want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
}

func TestDelete_NonOwnerRefused(t *testing.T) {
	lines := mutePrintln(t)
	f := &fakeAPI{post: &models.Post{ID: "p1", Title: "Theirs", Username: "alice"}}
	a := newTestApp(t, f, &models.User{Username: "mallory"})

	if err := a.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if !slices.Contains(*lines, "Only the author can delete this post.") {
		t.Fatalf("got %v", *lines)
	}
	if slices.Contains(f.calls, "delete p1") {
		t.Fatalf("delete must not be called: %v", f.calls)
	}
}
