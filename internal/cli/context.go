// Package cli provides the command-line interface for the locator application.
package cli

import (
	"sync"

	"github.com/law-makers/locator/internal/app"
	"github.com/spf13/cobra"
)

var (
	appMu     sync.Mutex
	globalApp *app.Application
)

// SetApp stores the Application shared by the command tree.
// Cobra hands commands no mutable context before PersistentPreRunE, so the
// instance lives at package level for the lifetime of one Execute.
func SetApp(cmd *cobra.Command, a *app.Application) {
	if cmd == nil {
		return
	}
	appMu.Lock()
	defer appMu.Unlock()
	globalApp = a
}

// GetAppFromCmd returns the Application initialized for cmd, if any
func GetAppFromCmd(cmd *cobra.Command) *app.Application {
	appMu.Lock()
	defer appMu.Unlock()
	return globalApp
}
