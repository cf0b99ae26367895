package components

import (
	"praise-board/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	groupColumns  = 6
	markTextSize  = 30
	titleTextSize = 24
)

// StudentTile is a clickable name with the mark of the active mode beside it
type StudentTile struct {
	container *fyne.Container
	button    *widget.Button
	mark      *canvas.Text
}

func NewStudentTile(name string, onTap func()) *StudentTile {
	tile := &StudentTile{
		button: widget.NewButton(name, onTap),
		mark:   canvas.NewText("", models.PraiseColor),
	}
	tile.mark.TextSize = markTextSize
	tile.container = container.NewHBox(tile.button, tile.mark)
	return tile
}

// SetMark shows the mode symbol when on, nothing otherwise
func (st *StudentTile) SetMark(mode models.Mode, on bool) {
	if on {
		st.mark.Text = mode.Symbol()
	} else {
		st.mark.Text = ""
	}
	st.mark.Color = mode.Color()
	st.mark.Refresh()
}

func (st *StudentTile) Mark() string {
	return st.mark.Text
}

func (st *StudentTile) Button() *widget.Button {
	return st.button
}

// GroupPanel stacks up to four tiles above the group caption
type GroupPanel struct {
	container *fyne.Container
	title     *canvas.Text
	number    int
}

func NewGroupPanel(number int, tiles []*StudentTile) *GroupPanel {
	title := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	title.TextSize = titleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	rows := container.NewVBox()
	for _, tile := range tiles {
		rows.Add(tile.container)
	}

	return &GroupPanel{
		container: container.NewBorder(nil, title, nil, nil, rows),
		title:     title,
		number:    number,
	}
}

func (gp *GroupPanel) SetTitle(title string) {
	gp.title.Text = title
	gp.title.Refresh()
}

// BoardGrid lays the group panels out in two rows of six
type BoardGrid struct {
	container *fyne.Container
	panels    []*GroupPanel
	tiles     map[string]*StudentTile

	toggleHandler func(name string)
}

// NewBoardGrid builds one panel per group. Tiles report taps through the
// handler set with SetToggleHandler.
func NewBoardGrid(groups [][]string) *BoardGrid {
	bg := &BoardGrid{
		tiles: make(map[string]*StudentTile),
	}

	grid := container.NewGridWithColumns(groupColumns)
	for i, names := range groups {
		tiles := make([]*StudentTile, 0, len(names))
		for _, name := range names {
			student := name
			tile := NewStudentTile(student, func() { bg.toggle(student) })
			bg.tiles[student] = tile
			tiles = append(tiles, tile)
		}
		panel := NewGroupPanel(i+1, tiles)
		bg.panels = append(bg.panels, panel)
		grid.Add(panel.container)
	}
	bg.container = grid
	return bg
}

func (bg *BoardGrid) toggle(name string) {
	if bg.toggleHandler != nil {
		bg.toggleHandler(name)
	}
}

func (bg *BoardGrid) SetToggleHandler(handler func(name string)) {
	bg.toggleHandler = handler
}

// SetMark updates the tile of one student; unknown names are ignored
func (bg *BoardGrid) SetMark(name string, mode models.Mode, on bool) {
	if tile, ok := bg.tiles[name]; ok {
		tile.SetMark(mode, on)
	}
}

// SetGroupTitles labels each panel with title(number)
func (bg *BoardGrid) SetGroupTitles(title func(number int) string) {
	for _, panel := range bg.panels {
		panel.SetTitle(title(panel.number))
	}
}

func (bg *BoardGrid) Tile(name string) (*StudentTile, bool) {
	tile, ok := bg.tiles[name]
	return tile, ok
}

func (bg *BoardGrid) GetContainer() *fyne.Container {
	return bg.container
}
