package components

import (
	"image/color"
	"sync"
	"time"

	"praise-board/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const clockInterval = time.Second

var weekdays = []string{"日", "一", "二", "三", "四", "五", "六"}

var datePatterns = map[models.DateFormat]string{
	models.DateYMD: "2006年01月02日",
	models.DateMDY: "01月02日2006年",
	models.DateDMY: "02日01月2006年",
}

var timePatterns = map[models.TimeFormat]string{
	models.TimeHMS: "15:04:05",
	models.TimeHM:  "15:04",
}

// FormatClock renders t like "2024年05月06日 14:03:09 星期一". Unknown formats
// fall back to the defaults.
func FormatClock(t time.Time, date models.DateFormat, clock models.TimeFormat) string {
	datePattern, ok := datePatterns[date]
	if !ok {
		datePattern = datePatterns[models.DateYMD]
	}
	timePattern, ok := timePatterns[clock]
	if !ok {
		timePattern = timePatterns[models.TimeHMS]
	}
	return t.Format(datePattern) + " " + t.Format(timePattern) + " 星期" + weekdays[t.Weekday()]
}

// Clock is the ticking date/time label in the header
type Clock struct {
	text *canvas.Text
	now  func() time.Time

	mu    sync.RWMutex
	date  models.DateFormat
	clock models.TimeFormat

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewClock(textColor color.Color, size float32) *Clock {
	c := &Clock{
		now:   time.Now,
		date:  models.DateYMD,
		clock: models.TimeHMS,
		done:  make(chan struct{}),
	}
	c.text = canvas.NewText("", textColor)
	c.text.TextSize = size
	c.text.TextStyle = fyne.TextStyle{Bold: true}
	c.text.Text = c.Text()
	return c
}

// SetFormat changes the formats; the label updates immediately
func (c *Clock) SetFormat(date models.DateFormat, clock models.TimeFormat) {
	c.mu.Lock()
	c.date = date
	c.clock = clock
	c.mu.Unlock()
	c.update()
}

// Text is the current label text
func (c *Clock) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return FormatClock(c.now(), c.date, c.clock)
}

// Start ticks once per second until Shutdown. Updates go through fyne.Do.
func (c *Clock) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(clockInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fyne.Do(c.update)
			case <-c.done:
				return
			}
		}
	}()
}

func (c *Clock) Shutdown() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

func (c *Clock) update() {
	c.text.Text = c.Text()
	c.text.Refresh()
}

func (c *Clock) CanvasObject() fyne.CanvasObject {
	return c.text
}
