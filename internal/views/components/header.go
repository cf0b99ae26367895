package components

import (
	"praise-board/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const headerTextSize = 30

// Header is the top strip: subject picker, praise/criticism switch and clock
type Header struct {
	container     *fyne.Container
	subjectSelect *widget.Select
	modeRadio     *widget.RadioGroup
	clock         *Clock

	subjectHandler func(string)
	modeHandler    func(models.Mode)

	// set while the view is being synced from the board
	updating bool
}

func NewHeader() *Header {
	h := &Header{}
	h.createComponents()
	h.buildLayout()
	return h
}

func (h *Header) createComponents() {
	h.subjectSelect = widget.NewSelect(models.Subjects, func(subject string) {
		if h.updating || h.subjectHandler == nil {
			return
		}
		h.subjectHandler(subject)
	})
	h.subjectSelect.SetSelected(models.DefaultSubject())

	h.modeRadio = widget.NewRadioGroup(
		[]string{models.ModePraise.Symbol(), models.ModeCriticism.Symbol()},
		func(symbol string) {
			if h.updating || h.modeHandler == nil {
				return
			}
			h.modeHandler(modeForSymbol(symbol))
		},
	)
	h.modeRadio.Horizontal = true
	h.modeRadio.Required = true
	h.modeRadio.SetSelected(models.ModePraise.Symbol())

	h.clock = NewClock(theme.Color(theme.ColorNameForeground), headerTextSize)
}

func (h *Header) buildLayout() {
	h.container = container.NewHBox(
		h.subjectSelect,
		h.modeRadio,
		layout.NewSpacer(),
		h.clock.CanvasObject(),
	)
}

func modeForSymbol(symbol string) models.Mode {
	if symbol == models.ModeCriticism.Symbol() {
		return models.ModeCriticism
	}
	return models.ModePraise
}

func (h *Header) SetSubjectHandler(handler func(string)) {
	h.subjectHandler = handler
}

func (h *Header) SetModeHandler(handler func(models.Mode)) {
	h.modeHandler = handler
}

// SetSubject shows subject without reporting it back as a user change
func (h *Header) SetSubject(subject string) {
	h.updating = true
	defer func() { h.updating = false }()
	h.subjectSelect.SetSelected(subject)
}

func (h *Header) SetMode(mode models.Mode) {
	h.updating = true
	defer func() { h.updating = false }()
	h.modeRadio.SetSelected(mode.Symbol())
}

func (h *Header) Subject() string {
	return h.subjectSelect.Selected
}

func (h *Header) Mode() models.Mode {
	return modeForSymbol(h.modeRadio.Selected)
}

func (h *Header) Clock() *Clock {
	return h.clock
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}
