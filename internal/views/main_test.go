package views

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"praise-board/internal/controllers"
	"praise-board/internal/logger"
	"praise-board/internal/models"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bracketLabels struct{}

func (bracketLabels) T(key string) string { return "[" + key + "]" }

func (bracketLabels) Tf(key string, data map[string]interface{}) string {
	return fmt.Sprintf("[%s %v]", key, data["Number"])
}

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewTempApp(t)
	window := a.NewWindow("board")
	t.Cleanup(window.Close)
	return NewMainView(window, [][]string{{"张三", "李四"}, {"王五"}}, logger.NoOpLogger{})
}

func TestMainView_ApplyTranslations(t *testing.T) {
	view := newTestView(t)
	view.ApplyTranslations(bracketLabels{})

	menu := view.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "[file]", menu.Items[0].Label)

	var labels []string
	for _, item := range menu.Items[0].Items {
		if !item.IsSeparator {
			labels = append(labels, item.Label)
		}
	}
	assert.Equal(t, []string{
		"[save]", "[save_as]", "[open]", "[export]", "[preferences]", "[fullscreen]", "[exit]",
	}, labels)
}

func TestMainView_ForwardsEvents(t *testing.T) {
	view := newTestView(t)

	var toggled []string
	saved := 0
	view.SetHandlers(controllers.Handlers{
		ToggleStudent: func(name string) { toggled = append(toggled, name) },
		ChangeSubject: func(string) {},
		ChangeMode:    func(models.Mode) {},
		Save:          func() { saved++ },
	})
	view.ApplyTranslations(bracketLabels{})

	tile, ok := view.board.Tile("王五")
	require.True(t, ok)
	test.Tap(tile.Button())
	assert.Equal(t, []string{"王五"}, toggled)

	view.window.MainMenu().Items[0].Items[0].Action()
	assert.Equal(t, 1, saved)

	// no handler bound
	view.window.MainMenu().Items[0].Items[2].Action()
}

func TestMainView_RendersBoardState(t *testing.T) {
	view := newTestView(t)

	view.SetSubject("地理")
	view.SetMode(models.ModeCriticism)
	view.ShowMark("李四", models.ModeCriticism, true)
	view.SetTitle("班级实时表现公示栏 *")

	assert.Equal(t, "地理", view.header.Subject())
	assert.Equal(t, models.ModeCriticism, view.header.Mode())
	tile, _ := view.board.Tile("李四")
	assert.Equal(t, "✗", tile.Mark())
	assert.Equal(t, "班级实时表现公示栏 *", view.window.Title())
}

func TestMainView_DismissedSavePromptCancels(t *testing.T) {
	view := newTestView(t)

	var answers []controllers.SaveChoice
	view.AskSaveChanges("退出", "是否保存更改后再退出？", func(choice controllers.SaveChoice) {
		answers = append(answers, choice)
	})
	require.NotNil(t, view.savePrompt)

	view.savePrompt.dialog.Hide()

	assert.Equal(t, []controllers.SaveChoice{controllers.ChoiceCancel}, answers)
	assert.Nil(t, view.savePrompt)
}

func TestMainView_SavePromptAnswersOnce(t *testing.T) {
	tests := []struct {
		name   string
		button func(*savePrompt) *widget.Button
		want   controllers.SaveChoice
	}{
		{"yes", func(p *savePrompt) *widget.Button { return p.yes }, controllers.ChoiceYes},
		{"no", func(p *savePrompt) *widget.Button { return p.no }, controllers.ChoiceNo},
		{"cancel", func(p *savePrompt) *widget.Button { return p.cancel }, controllers.ChoiceCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newTestView(t)

			var answers []controllers.SaveChoice
			view.AskSaveChanges("退出", "是否保存更改后再退出？", func(choice controllers.SaveChoice) {
				answers = append(answers, choice)
			})
			require.NotNil(t, view.savePrompt)

			test.Tap(tt.button(view.savePrompt))

			assert.Equal(t, []controllers.SaveChoice{tt.want}, answers)
			assert.Nil(t, view.savePrompt)
		})
	}
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestMainView_ClosePickedLogsFailure(t *testing.T) {
	view := newTestView(t)

	var buf bytes.Buffer
	view.logger = logger.NewZerolog(&buf, logger.DebugLevel)

	view.closePicked("/tmp/board.json", failingCloser{})

	assert.Contains(t, buf.String(), "failed to close picked file")
	assert.Contains(t, buf.String(), "/tmp/board.json")
	assert.Contains(t, buf.String(), "disk gone")
}
