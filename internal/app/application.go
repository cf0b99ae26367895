package app

import (
	"praise-board/internal/config"
	"praise-board/internal/controllers"
	"praise-board/internal/logger"
	"praise-board/internal/models"
	"praise-board/internal/services"
	"praise-board/internal/shutdown"
	"praise-board/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Praise Board"
	AppID      = "com.praiseboard.app"
	AppVersion = "1.0.0"
)

// startupError is shown once the window is visible. key selects the
// translated message prefix.
type startupError struct {
	key string
	err error
}

type Application struct {
	config  *config.Config
	logger  logger.Logger
	fyneApp fyne.App
	window  fyne.Window

	board      *models.Board
	controller *controllers.MainController
	view       *views.MainView
	watcher    *services.LocaleWatcher
	shutdown   *shutdown.Manager

	startupErrors []startupError
}

// NewApplication loads preferences, locales and the roster and wires the
// board window. File problems do not abort startup; they are reported in
// dialogs once Run shows the window.
func NewApplication(cfg *config.Config, log logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	a := &Application{
		config:   cfg,
		logger:   log,
		fyneApp:  fyneApp,
		window:   window,
		shutdown: shutdown.NewManager(log),
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"names_file":    cfg.NamesFile,
		"locales_dir":   cfg.LocalesDir,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
	})

	if created, err := services.EnsureLocales(cfg.LocalesDir); err != nil {
		a.deferError("locales_error", err)
	} else if len(created) > 0 {
		log.Info("Application", "default locale files written", map[string]interface{}{"files": created})
	}

	prefsStore := services.NewPreferencesStore(cfg.PreferencesFile, log)
	prefs, err := prefsStore.Load()
	if err != nil {
		a.deferError("preferences_error", err)
	}

	translator := services.NewTranslator(cfg.LocalesDir, log)
	if err := translator.Use(prefs.Language); err != nil {
		log.Warning("Application", "locale override not applied", map[string]interface{}{"error": err.Error()})
	}

	a.board = a.loadBoard(services.NewRosterService(log))

	a.controller = controllers.NewMainController(
		a.board,
		services.NewSessionService(log),
		prefsStore,
		translator,
		services.NewExportService(log),
		log,
	)
	a.view = views.NewMainView(window, a.board.Groups(), log)
	a.controller.SetView(a.view)

	if cfg.WatchLocales {
		a.watcher = services.NewLocaleWatcher(translator, log, a.onLocaleReload)
	}

	a.setupLifecycle()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"students": len(a.board.Roster()),
		"language": string(translator.Language()),
	})
	return a
}

// loadBoard falls back to an empty board when the roster cannot be used
func (a *Application) loadBoard(roster *services.RosterService) *models.Board {
	names, err := roster.Load(a.config.NamesFile)
	if err != nil {
		a.deferError("roster_error", err)
	}

	board, err := models.NewBoard(names)
	if err != nil {
		a.deferError("roster_error", err)
		board, _ = models.NewBoard(nil)
	}

	if shown := models.GroupCount * models.GroupSize; len(board.Roster()) > shown {
		a.logger.Warning("Application", "roster longer than the board", map[string]interface{}{
			"students": len(board.Roster()),
			"shown":    shown,
		})
	}
	return board
}

func (a *Application) deferError(key string, err error) {
	a.startupErrors = append(a.startupErrors, startupError{key: key, err: err})
}

// onLocaleReload runs on the watcher goroutine
func (a *Application) onLocaleReload(err error) {
	fyne.Do(func() {
		if err != nil {
			a.logger.Warning("Application", "edited locale file rejected, keeping bundled strings", map[string]interface{}{
				"error": err.Error(),
			})
		}
		a.controller.RefreshTranslations()
	})
}

// Run shows the window and blocks until the application quits
func (a *Application) Run() {
	a.view.Show()

	for _, startup := range a.startupErrors {
		a.controller.ReportError(startup.key, startup.err)
	}

	a.view.Clock().Start()
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.logger.Warning("Application", "locale watcher disabled", map[string]interface{}{"error": err.Error()})
		}
	}
	a.shutdown.Listen()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
}
