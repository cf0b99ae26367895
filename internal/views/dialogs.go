package views

import (
	"errors"
	"io"
	"path/filepath"

	"praise-board/internal/controllers"
	"praise-board/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

func (mv *MainView) ShowError(title, message string) {
	d := dialog.NewError(errors.New(message), mv.window)
	d.Show()
}

// savePrompt is the open save-before-exit dialog
type savePrompt struct {
	dialog          *dialog.CustomDialog
	yes, no, cancel *widget.Button
}

// AskSaveChanges offers Yes, No and Cancel. Dismissing the dialog counts as Cancel.
func (mv *MainView) AskSaveChanges(title, message string, answer func(controllers.SaveChoice)) {
	prompt := &savePrompt{}
	answered := false

	choose := func(choice controllers.SaveChoice) func() {
		return func() {
			answered = true
			prompt.dialog.Hide()
			answer(choice)
		}
	}

	prompt.yes = widget.NewButton(mv.t("yes"), choose(controllers.ChoiceYes))
	prompt.yes.Importance = widget.HighImportance
	prompt.no = widget.NewButton(mv.t("no"), choose(controllers.ChoiceNo))
	prompt.cancel = widget.NewButton(mv.t("cancel"), choose(controllers.ChoiceCancel))

	prompt.dialog = dialog.NewCustomWithoutButtons(title, widget.NewLabel(message), mv.window)
	prompt.dialog.SetButtons([]fyne.CanvasObject{prompt.cancel, prompt.no, prompt.yes})
	prompt.dialog.SetOnClosed(func() {
		mv.savePrompt = nil
		if !answered {
			answered = true
			answer(controllers.ChoiceCancel)
		}
	})

	mv.savePrompt = prompt
	prompt.dialog.Show()
}

// AskSavePath filters on the extension of suggestedName. By the time chosen
// runs the picker has already created or truncated the file; the caller
// rewrites it in full.
func (mv *MainView) AskSavePath(title, suggestedName string, chosen func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError(mv.t("error"), err.Error())
			chosen("")
			return
		}
		if writer == nil {
			chosen("")
			return
		}
		path := writer.URI().Path()
		mv.closePicked(path, writer)
		chosen(path)
	}, mv.window)

	d.SetConfirmText(title)
	d.SetFileName(suggestedName)
	if ext := filepath.Ext(suggestedName); ext != "" {
		d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	}
	d.Show()
}

func (mv *MainView) AskOpenPath(title string, chosen func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError(mv.t("error"), err.Error())
			chosen("")
			return
		}
		if reader == nil {
			chosen("")
			return
		}
		path := reader.URI().Path()
		mv.closePicked(path, reader)
		chosen(path)
	}, mv.window)

	d.SetConfirmText(title)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// closePicked releases the handle the picker opened. Services reopen the
// path themselves, so a failed close is logged and not fatal.
func (mv *MainView) closePicked(path string, c io.Closer) {
	if err := c.Close(); err != nil {
		mv.logger.Warning("MainView", "failed to close picked file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

// AskPreferences shows language, date and time format pickers
func (mv *MainView) AskPreferences(current models.Preferences, apply func(models.Preferences)) {
	languageLabels := make([]string, 0, len(models.Languages))
	for _, option := range models.Languages {
		languageLabels = append(languageLabels, option.Label)
	}
	languageSelect := widget.NewSelect(languageLabels, nil)
	for _, option := range models.Languages {
		if option.Code == current.Language {
			languageSelect.SetSelected(option.Label)
		}
	}

	dateSelect := widget.NewSelect(formatOptions(models.DateFormats), nil)
	dateSelect.SetSelected(string(current.DateFormat))

	timeSelect := widget.NewSelect(formatOptions(models.TimeFormats), nil)
	timeSelect.SetSelected(string(current.TimeFormat))

	items := []*widget.FormItem{
		widget.NewFormItem(mv.t("language"), languageSelect),
		widget.NewFormItem(mv.t("date_format"), dateSelect),
		widget.NewFormItem(mv.t("time_format"), timeSelect),
	}

	d := dialog.NewForm(mv.t("preferences"), mv.t("ok"), mv.t("cancel"), items, func(confirmed bool) {
		if !confirmed {
			return
		}
		prefs := current
		for _, option := range models.Languages {
			if option.Label == languageSelect.Selected {
				prefs.Language = option.Code
			}
		}
		prefs.DateFormat = models.DateFormat(dateSelect.Selected)
		prefs.TimeFormat = models.TimeFormat(timeSelect.Selected)
		apply(prefs)
	}, mv.window)

	d.Resize(fyne.NewSize(400, 300))
	d.Show()
}

func formatOptions[T ~string](values []T) []string {
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = string(v)
	}
	return options
}
