package components

import (
	"image/color"
	"testing"
	"time"

	"praise-board/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	// a Monday
	at := time.Date(2024, time.May, 6, 14, 3, 9, 0, time.Local)

	tests := []struct {
		date  models.DateFormat
		clock models.TimeFormat
		want  string
	}{
		{models.DateYMD, models.TimeHMS, "2024年05月06日 14:03:09 星期一"},
		{models.DateMDY, models.TimeHMS, "05月06日2024年 14:03:09 星期一"},
		{models.DateDMY, models.TimeHM, "06日05月2024年 14:03 星期一"},
		{"", "", "2024年05月06日 14:03:09 星期一"},
	}

	for _, tt := range tests {
		t.Run(string(tt.date)+string(tt.clock), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(at, tt.date, tt.clock))
		})
	}
}

func TestFormatClock_Sunday(t *testing.T) {
	at := time.Date(2024, time.May, 5, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2024年05月05日 08:00 星期日", FormatClock(at, models.DateYMD, models.TimeHM))
}

func TestClock_SetFormatUsesInjectedTime(t *testing.T) {
	test.NewTempApp(t)

	c := NewClock(color.Black, 12)
	c.now = func() time.Time { return time.Date(2024, time.May, 11, 9, 30, 0, 0, time.Local) }

	c.SetFormat(models.DateDMY, models.TimeHM)

	assert.Equal(t, "11日05月2024年 09:30 星期六", c.Text())
	assert.Equal(t, c.Text(), c.text.Text)
}

func TestClock_ShutdownWithoutStart(t *testing.T) {
	c := NewClock(color.Black, 12)
	c.Shutdown()
	c.Shutdown()
}
