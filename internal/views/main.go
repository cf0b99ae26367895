package views

import (
	"praise-board/internal/controllers"
	"praise-board/internal/logger"
	"praise-board/internal/models"
	"praise-board/internal/services"
	"praise-board/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the board window. Its methods must run on the Fyne goroutine;
// background callers go through fyne.Do.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *components.Header
	board         *components.BoardGrid

	handlers   controllers.Handlers
	labels     services.Labeler
	logger     logger.Logger
	savePrompt *savePrompt
}

var _ controllers.BoardView = (*MainView)(nil)

// NewMainView builds the header and one panel per group of names
func NewMainView(window fyne.Window, groups [][]string, log logger.Logger) *MainView {
	view := &MainView{
		window: window,
		logger: log,
	}

	view.initializeComponents(groups)
	view.buildLayout()
	view.setupShortcuts()

	return view
}

func (mv *MainView) initializeComponents(groups [][]string) {
	mv.header = components.NewHeader()
	mv.board = components.NewBoardGrid(groups)
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		container.NewVBox(mv.header.GetContainer(), widget.NewSeparator()),
		nil,
		nil,
		nil,
		container.NewVScroll(mv.board.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

// SetHandlers connects component events to the controller
func (mv *MainView) SetHandlers(handlers controllers.Handlers) {
	mv.handlers = handlers

	mv.header.SetSubjectHandler(handlers.ChangeSubject)
	mv.header.SetModeHandler(handlers.ChangeMode)
	mv.board.SetToggleHandler(handlers.ToggleStudent)
}

func (mv *MainView) SetTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) SetSubject(subject string) {
	mv.header.SetSubject(subject)
}

func (mv *MainView) SetMode(mode models.Mode) {
	mv.header.SetMode(mode)
}

func (mv *MainView) ShowMark(student string, mode models.Mode, on bool) {
	mv.board.SetMark(student, mode, on)
}

// ApplyTranslations relabels everything that carries text: menus, group
// captions and dialogs opened from now on.
func (mv *MainView) ApplyTranslations(labels services.Labeler) {
	mv.labels = labels

	mv.board.SetGroupTitles(func(number int) string {
		return labels.Tf("group", map[string]interface{}{"Number": number})
	})
	mv.setupMenus()
}

func (mv *MainView) SetClockFormat(date models.DateFormat, clock models.TimeFormat) {
	mv.header.Clock().SetFormat(date, clock)
}

// Clock exposes the header clock so the application can start and stop it
func (mv *MainView) Clock() *components.Clock {
	return mv.header.Clock()
}

func (mv *MainView) ToggleFullscreen() {
	mv.window.SetFullScreen(!mv.window.FullScreen())
}

// Quit closes the window without going through the close intercept
func (mv *MainView) Quit() {
	mv.window.Close()
}

func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) t(key string) string {
	if mv.labels == nil {
		return key
	}
	return mv.labels.T(key)
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
