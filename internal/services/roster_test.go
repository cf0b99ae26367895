package services

import (
	"os"
	"path/filepath"
	"testing"

	"praise-board/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRosterService_LoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students_name.txt")
	body := "\ufeff张三\r\n李四\n\n  王五  \n赵六\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	names, err := NewRosterService(logger.NoOpLogger{}).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"张三", "李四", "王五", "赵六"}, names)
}

func TestRosterService_LoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "姓名"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "张三"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "ignored"))
	require.NoError(t, f.SetCellValue(sheet, "A4", " 李四 "))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	names, err := NewRosterService(logger.NoOpLogger{}).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"张三", "李四"}, names)
}

func TestRosterService_MissingFile(t *testing.T) {
	_, err := NewRosterService(logger.NoOpLogger{}).Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
