package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	parts := make([]string, 0, 2)
	if a.userName != "" {
		parts = append(parts, a.userName)
	}
	if a.mode != "" {
		parts = append(parts, string(a.mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// Root greets the user, starts the connectivity watcher and hands over to
// the REPL.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	title := a.storeService.Title(ctx)
	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", title)

	stop := a.session.Observe(a.onSessionChange)
	defer stop()

	go a.StartOnlineStatusWatcher(ctx, a.config.StatusCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
