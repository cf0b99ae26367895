package controllers

import (
	"path/filepath"
	"strings"
	"sync"

	"praise-board/internal/logger"
	"praise-board/internal/models"
	"praise-board/internal/services"
)

// SaveChoice is the answer to a save-before-continuing prompt
type SaveChoice int

const (
	ChoiceCancel SaveChoice = iota
	ChoiceYes
	ChoiceNo
)

// Handlers are the user intents a view forwards to the controller
type Handlers struct {
	ToggleStudent func(name string)
	ChangeMode    func(mode models.Mode)
	ChangeSubject func(subject string)
	Save          func()
	SaveAs        func()
	Open          func()
	Export        func()
	Preferences   func()
	Quit          func()
}

// BoardView is everything the controller needs from the window. Dialog
// methods answer through callbacks; an empty path means the user cancelled.
type BoardView interface {
	SetHandlers(handlers Handlers)
	SetTitle(title string)
	SetSubject(subject string)
	SetMode(mode models.Mode)
	ShowMark(student string, mode models.Mode, on bool)
	ApplyTranslations(labels services.Labeler)
	SetClockFormat(date models.DateFormat, clock models.TimeFormat)

	ShowInfo(title, message string)
	ShowError(title, message string)
	AskSaveChanges(title, message string, answer func(SaveChoice))
	AskSavePath(title, suggestedName string, chosen func(path string))
	AskOpenPath(title string, chosen func(path string))
	AskPreferences(current models.Preferences, apply func(models.Preferences))
	Quit()
}

// MainController turns view events into board mutations and persistence
type MainController struct {
	board      *models.Board
	sessions   *services.SessionService
	prefs      *services.PreferencesStore
	translator *services.Translator
	exporter   *services.ExportService
	logger     logger.Logger

	view BoardView

	mu          sync.RWMutex
	currentFile string
}

func NewMainController(
	board *models.Board,
	sessions *services.SessionService,
	prefs *services.PreferencesStore,
	translator *services.Translator,
	exporter *services.ExportService,
	log logger.Logger,
) *MainController {
	mc := &MainController{
		board:      board,
		sessions:   sessions,
		prefs:      prefs,
		translator: translator,
		exporter:   exporter,
		logger:     log,
	}
	board.Subscribe(mc.onBoardChanged)
	return mc
}

// SetView binds the view and renders the whole board into it
func (mc *MainController) SetView(view BoardView) {
	mc.view = view

	view.SetHandlers(Handlers{
		ToggleStudent: mc.ToggleStudent,
		ChangeMode:    mc.ChangeMode,
		ChangeSubject: mc.ChangeSubject,
		Save:          func() { mc.Save(nil) },
		SaveAs:        func() { mc.SaveAs(nil) },
		Open:          mc.Open,
		Export:        mc.Export,
		Preferences:   mc.EditPreferences,
		Quit:          mc.RequestQuit,
	})

	prefs := mc.prefs.Current()
	view.ApplyTranslations(mc.translator)
	view.SetClockFormat(prefs.DateFormat, prefs.TimeFormat)
	mc.refreshView()
}

// CurrentFile is the path of the last saved or loaded session, if any
func (mc *MainController) CurrentFile() string {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.currentFile
}

func (mc *MainController) setCurrentFile(path string) {
	mc.mu.Lock()
	mc.currentFile = path
	mc.mu.Unlock()
}

// WindowTitle is the board caption, the current file name and a trailing
// asterisk while there are unsaved changes.
func (mc *MainController) WindowTitle() string {
	var b strings.Builder
	b.WriteString(mc.translator.T("class_display_board"))
	if file := mc.CurrentFile(); file != "" {
		b.WriteString(" - ")
		b.WriteString(filepath.Base(file))
	}
	if mc.board.IsModified() {
		b.WriteString(" *")
	}
	return b.String()
}

// ToggleStudent flips the student's flag for the active mode
func (mc *MainController) ToggleStudent(name string) {
	on, err := mc.board.Toggle(name)
	if err != nil {
		mc.logger.Warning("MainController", "toggle ignored", map[string]interface{}{"student": name, "error": err.Error()})
		return
	}
	mc.logger.Debug("MainController", "student toggled", map[string]interface{}{
		"student": name,
		"mode":    string(mc.board.Mode()),
		"on":      on,
	})
}

func (mc *MainController) ChangeMode(mode models.Mode) {
	if err := mc.board.SetMode(mode); err != nil {
		mc.logger.Error("MainController", err, nil)
		mc.refreshView()
	}
}

func (mc *MainController) ChangeSubject(subject string) {
	if err := mc.board.SetSubject(subject); err != nil {
		mc.logger.Error("MainController", err, nil)
		mc.refreshView()
	}
}

// Save writes to the current file, or asks for one. done, if set, receives
// whether the board ended up on disk.
func (mc *MainController) Save(done func(bool)) {
	path := mc.CurrentFile()
	if path == "" {
		mc.SaveAs(done)
		return
	}
	finish(done, mc.saveTo(path))
}

// SaveAs asks for a path and saves there. done reports whether the board
// was written.
func (mc *MainController) SaveAs(done func(bool)) {
	mc.view.AskSavePath(mc.translator.T("save_as"), "praise-board.json", func(path string) {
		if path == "" {
			finish(done, false)
			return
		}
		finish(done, mc.saveTo(path))
	})
}

func (mc *MainController) saveTo(path string) bool {
	if err := mc.sessions.Save(path, mc.board.Snapshot()); err != nil {
		mc.view.ShowError(mc.translator.T("error"), mc.translator.T("save_error")+err.Error())
		return false
	}

	mc.setCurrentFile(path)
	mc.board.MarkSaved()
	mc.view.SetTitle(mc.WindowTitle())
	mc.view.ShowInfo(mc.translator.T("success"), mc.translator.T("save_success"))
	return true
}

// Open loads a session file, offering to save unsaved changes first
func (mc *MainController) Open() {
	mc.confirmDiscard(mc.translator.T("save_before_load"), func() {
		mc.view.AskOpenPath(mc.translator.T("open"), func(path string) {
			if path != "" {
				mc.loadFrom(path)
			}
		})
	})
}

func (mc *MainController) loadFrom(path string) {
	session, err := mc.sessions.Load(path)
	if err != nil {
		mc.view.ShowError(mc.translator.T("error"), mc.translator.T("load_error")+err.Error())
		return
	}

	unknown, err := mc.board.Apply(session)
	if err != nil {
		mc.logger.Error("MainController", err, map[string]interface{}{"path": path})
		mc.view.ShowError(mc.translator.T("error"), mc.translator.T("load_error")+err.Error())
		return
	}
	if len(unknown) > 0 {
		mc.logger.Warning("MainController", "session names not on roster", map[string]interface{}{
			"path":     path,
			"students": unknown,
		})
	}

	mc.setCurrentFile(path)
	mc.view.SetTitle(mc.WindowTitle())

	message := mc.translator.T("load_success")
	if len(unknown) > 0 {
		message += "\n" + mc.translator.T("unknown_students") + strings.Join(unknown, ", ")
	}
	mc.view.ShowInfo(mc.translator.T("success"), message)
}

// RequestQuit closes the window unless the user cancels or a save fails
func (mc *MainController) RequestQuit() {
	mc.confirmDiscard(mc.translator.T("save_before_exit"), mc.view.Quit)
}

// confirmDiscard runs proceed directly when nothing is modified. Otherwise
// Yes saves first and proceeds only on success, No proceeds, Cancel stops.
func (mc *MainController) confirmDiscard(message string, proceed func()) {
	if !mc.board.IsModified() {
		proceed()
		return
	}

	mc.view.AskSaveChanges(mc.translator.T("save_changes"), message, func(choice SaveChoice) {
		switch choice {
		case ChoiceYes:
			mc.Save(func(saved bool) {
				if saved {
					proceed()
				}
			})
		case ChoiceNo:
			proceed()
		}
	})
}

// Export writes the board as a spreadsheet
func (mc *MainController) Export() {
	mc.view.AskSavePath(mc.translator.T("export"), "praise-board.xlsx", func(path string) {
		if path == "" {
			return
		}
		err := mc.exporter.WriteFile(path, mc.board.Snapshot(), mc.board.Groups(), mc.translator)
		if err != nil {
			mc.view.ShowError(mc.translator.T("error"), mc.translator.T("export_error")+err.Error())
			return
		}
		mc.view.ShowInfo(mc.translator.T("success"), mc.translator.T("export_success"))
	})
}

func (mc *MainController) EditPreferences() {
	mc.view.AskPreferences(mc.prefs.Current(), mc.ApplyPreferences)
}

// ApplyPreferences saves prefs, switches language and re-labels the window
func (mc *MainController) ApplyPreferences(prefs models.Preferences) {
	if err := mc.prefs.Save(prefs); err != nil {
		mc.logger.Error("MainController", err, nil)
		mc.view.ShowError(mc.translator.T("error"), err.Error())
		return
	}

	if err := mc.translator.Use(prefs.Language); err != nil {
		mc.logger.Warning("MainController", "locale file not applied", map[string]interface{}{"error": err.Error()})
	}

	mc.view.ApplyTranslations(mc.translator)
	mc.view.SetClockFormat(prefs.DateFormat, prefs.TimeFormat)
	mc.view.SetTitle(mc.WindowTitle())
	mc.view.ShowInfo(mc.translator.T("success"), mc.translator.T("preferences_updated"))
}

// RefreshTranslations re-labels the window after the translator reloaded
func (mc *MainController) RefreshTranslations() {
	mc.view.ApplyTranslations(mc.translator)
	mc.view.SetTitle(mc.WindowTitle())
}

// ReportError shows a startup or background failure using a message key
// such as "roster_error" as the prefix.
func (mc *MainController) ReportError(key string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{"message": key})
	mc.view.ShowError(mc.translator.T("error"), mc.translator.T(key)+err.Error())
}

func (mc *MainController) onBoardChanged(change models.Change) {
	if mc.view == nil {
		return
	}

	switch change.Kind {
	case models.StudentChanged:
		record, ok := mc.board.Student(change.Student)
		if ok {
			mode := mc.board.Mode()
			mc.view.ShowMark(record.Name, mode, record.Flag(mode))
		}
	case models.SubjectChanged:
		mc.view.SetSubject(mc.board.Subject())
	case models.ModeChanged:
		mc.view.SetMode(mc.board.Mode())
		mc.renderMarks()
	case models.BoardReset:
		mc.refreshView()
		return
	}

	mc.view.SetTitle(mc.WindowTitle())
}

func (mc *MainController) renderMarks() {
	mode := mc.board.Mode()
	for _, record := range mc.board.Students() {
		mc.view.ShowMark(record.Name, mode, record.Flag(mode))
	}
}

func (mc *MainController) refreshView() {
	mc.view.SetSubject(mc.board.Subject())
	mc.view.SetMode(mc.board.Mode())
	mc.renderMarks()
	mc.view.SetTitle(mc.WindowTitle())
}

func finish(done func(bool), ok bool) {
	if done != nil {
		done(ok)
	}
}
