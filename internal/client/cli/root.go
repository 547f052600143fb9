package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the navigation-shell state for the prompt: the signed-in
// username, or a resolving marker while the initial identity exchange is
// still in flight.
func (a *App) getStatus() string {
	user, loading := a.session.Session()
	if loading {
		return "(resolving session...)"
	}
	if user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to BlogSpace (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
