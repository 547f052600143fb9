package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dkrasnovs/blogspace/internal/client/api"
	"github.com/dkrasnovs/blogspace/internal/client/models"
	"github.com/dkrasnovs/blogspace/internal/client/session"
	"github.com/dkrasnovs/blogspace/internal/logging"
)

// fakeAPI implements api.Client and records every call so tests can assert
// what reached the network layer and in what order.
type fakeAPI struct {
	calls []string

	token string

	loginToken string
	loginErr   error

	signupErr error

	user    *models.User
	userErr error

	posts    []models.Post
	listErr  error
	post     *models.Post
	getErr   error
	writeErr error
}

func (f *fakeAPI) SetToken(token string) {
	f.calls = append(f.calls, "settoken")
	f.token = token
}
func (f *fakeAPI) Login(_ context.Context, username, password string) (string, error) {
	f.calls = append(f.calls, "login "+username)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = f.loginToken
	return f.loginToken, nil
}
func (f *fakeAPI) Signup(_ context.Context, username, email, _ string) error {
	f.calls = append(f.calls, "signup "+username)
	return f.signupErr
}
func (f *fakeAPI) CurrentUser(context.Context) (*models.User, error) {
	f.calls = append(f.calls, "currentuser")
	return f.user, f.userErr
}
func (f *fakeAPI) ListPosts(context.Context) ([]models.Post, error) {
	f.calls = append(f.calls, "list")
	return f.posts, f.listErr
}
func (f *fakeAPI) GetPost(_ context.Context, id string) (*models.Post, error) {
	f.calls = append(f.calls, "get "+id)
	return f.post, f.getErr
}
func (f *fakeAPI) CreatePost(_ context.Context, title, _ string) error {
	f.calls = append(f.calls, "create "+title)
	return f.writeErr
}
func (f *fakeAPI) UpdatePost(_ context.Context, id, title, _ string) error {
	f.calls = append(f.calls, "update "+id+" "+title)
	return f.writeErr
}
func (f *fakeAPI) DeletePost(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return f.writeErr
}

var _ api.Client = (*fakeAPI)(nil)

// newTestApp wires an App around the fake client. The session's loading
// phase is finished; user may be nil for a signed-out session.
func newTestApp(t *testing.T, f *fakeAPI, user *models.User) *App {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	tokens := session.NewTokenStore(filepath.Join(t.TempDir(), "session.json"))
	store := session.NewStore(f, tokens, logger)
	store.SetUser(user)
	store.Init(context.Background()) // no persisted token: only drops the loading flag
	f.calls = nil

	return &App{
		api:     f,
		session: store,
		logger:  logger,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// mutePrintln silences user-facing output for the duration of a test and
// returns the captured lines.
func mutePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected text prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected password prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubMultiline(t *testing.T, answer string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		return answer, nil
	}
	t.Cleanup(func() { getMultiline = orig })
}
