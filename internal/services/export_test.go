package services

import (
	"bytes"
	"testing"

	"praise-board/internal/logger"
	"praise-board/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_Write(t *testing.T) {
	board, err := models.NewBoard([]string{"张三", "李四", "王五", "赵六", "钱七"})
	require.NoError(t, err)
	require.NoError(t, board.SetSubject("数学"))
	_, _ = board.Toggle("张三")
	require.NoError(t, board.SetMode(models.ModeCriticism))
	_, _ = board.Toggle("钱七")

	tr := NewTranslator("", logger.NoOpLogger{})

	var buf bytes.Buffer
	require.NoError(t, NewExportService(logger.NoOpLogger{}).Write(&buf, board.Snapshot(), board.Groups(), tr))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3+5)

	cell := func(r, c int) string {
		if r >= len(rows) || c >= len(rows[r]) {
			return ""
		}
		return rows[r][c]
	}
	line := func(r int) []string {
		return []string{cell(r, 0), cell(r, 1), cell(r, 2), cell(r, 3)}
	}

	assert.Equal(t, []string{"学科", "数学", "模式", "批评"}, line(0))
	assert.Equal(t, []string{"组别", "姓名", "表扬", "批评"}, line(2))
	assert.Equal(t, []string{"第1组", "张三", "✓", ""}, line(3))
	assert.Equal(t, []string{"第1组", "李四", "", ""}, line(4))
	assert.Equal(t, []string{"第2组", "钱七", "", "✗"}, line(7))
}
