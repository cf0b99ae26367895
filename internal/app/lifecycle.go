package app

import (
	"praise-board/internal/shutdown"

	"fyne.io/fyne/v2"
)

// setupLifecycle routes the window close button through the save prompt and
// registers background components with the shutdown manager. The Fyne app is
// registered first so that it quits after everything else has stopped.
func (a *Application) setupLifecycle() {
	a.shutdown.Register("application", shutdown.Func(a.quit))
	a.shutdown.Register("clock", a.view.Clock())
	if a.watcher != nil {
		a.shutdown.Register("locale watcher", a.watcher)
	}

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Lifecycle", "close requested", nil)
		a.controller.RequestQuit()
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Lifecycle", "window closed", nil)
		go a.shutdown.Shutdown()
	})
}

func (a *Application) quit() {
	if a.board.IsModified() {
		a.logger.Warning("Lifecycle", "quitting with unsaved changes", map[string]interface{}{
			"file": a.controller.CurrentFile(),
		})
	}
	fyne.Do(a.fyneApp.Quit)
}
