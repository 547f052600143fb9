package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dkrasnovs/blogspace/internal/client/api"
	"github.com/dkrasnovs/blogspace/internal/client/config"
	"github.com/dkrasnovs/blogspace/internal/client/session"
	"github.com/dkrasnovs/blogspace/internal/logging"
)

// App wires the page flows to the remote API and the session store. Pages
// are REPL commands; each one validates its input, talks to the API, and
// renders a fixed follow-up view on success.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Store
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	tokens := session.NewTokenStore(c.TokenFile)
	store := session.NewStore(apiClient, tokens, logger)

	return &App{
		config:  c,
		api:     apiClient,
		session: store,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}
}

// Run resolves the persisted session and hands control to the REPL.
// Identity resolution runs in the background so the listing renders while
// the credential is still being exchanged, the same way the pages load
// independently of the session.
func (a *App) Run(ctx context.Context) {
	go a.session.Init(ctx)
	a.Root(ctx)
}

func (a *App) signedIn() bool {
	user, _ := a.session.Session()
	return user != nil
}
