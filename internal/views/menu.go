package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (mv *MainView) setupMenus() {
	fileMenu := fyne.NewMenu(mv.t("file"),
		fyne.NewMenuItem(mv.t("save"), func() { call(mv.handlers.Save) }),
		fyne.NewMenuItem(mv.t("save_as"), func() { call(mv.handlers.SaveAs) }),
		fyne.NewMenuItem(mv.t("open"), func() { call(mv.handlers.Open) }),
		fyne.NewMenuItem(mv.t("export"), func() { call(mv.handlers.Export) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(mv.t("preferences"), func() { call(mv.handlers.Preferences) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(mv.t("fullscreen"), mv.ToggleFullscreen),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(mv.t("exit"), func() { call(mv.handlers.Quit) }),
	)
	// stands in for the Quit item Fyne would append, which skips the save prompt
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// setupShortcuts registers Ctrl+S, Ctrl+Shift+S, Ctrl+O, Ctrl+Q and
// Alt+Enter on the window canvas.
func (mv *MainView) setupShortcuts() {
	shortcuts := []struct {
		key      fyne.KeyName
		modifier fyne.KeyModifier
		action   func()
	}{
		{fyne.KeyS, fyne.KeyModifierShortcutDefault, func() { call(mv.handlers.Save) }},
		{fyne.KeyS, fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift, func() { call(mv.handlers.SaveAs) }},
		{fyne.KeyO, fyne.KeyModifierShortcutDefault, func() { call(mv.handlers.Open) }},
		{fyne.KeyQ, fyne.KeyModifierShortcutDefault, func() { call(mv.handlers.Quit) }},
		{fyne.KeyReturn, fyne.KeyModifierAlt, mv.ToggleFullscreen},
		{fyne.KeyEnter, fyne.KeyModifierAlt, mv.ToggleFullscreen},
	}

	canvas := mv.window.Canvas()
	for _, s := range shortcuts {
		action := s.action
		canvas.AddShortcut(&desktop.CustomShortcut{KeyName: s.key, Modifier: s.modifier}, func(fyne.Shortcut) {
			action()
		})
	}
}
