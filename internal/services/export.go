package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"praise-board/internal/logger"
	"praise-board/internal/models"

	"github.com/xuri/excelize/v2"
)

// Labeler supplies localized column and group labels
type Labeler interface {
	T(key string) string
	Tf(key string, data map[string]interface{}) string
}

// ExportService writes the board as an .xlsx workbook
type ExportService struct {
	logger logger.Logger
}

func NewExportService(log logger.Logger) *ExportService {
	return &ExportService{logger: log}
}

// Write lays the board out as one sheet: subject and mode on the first row,
// then one row per student with group, name, praise and criticism marks.
func (es *ExportService) Write(w io.Writer, session models.Session, groups [][]string, labels Labeler) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			es.logger.Warning("ExportService", "workbook close failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{labels.T("subject"), session.Subject, labels.T("mode"), labels.T(string(session.Mode))},
		{},
		{labels.T("group_header"), labels.T("name"), labels.T("praise"), labels.T("criticism")},
	}

	for i, group := range groups {
		groupLabel := labels.Tf("group", map[string]interface{}{"Number": i + 1})
		for _, name := range group {
			flags := session.Students[name]
			rows = append(rows, []interface{}{groupLabel, name, mark(flags.Praise, models.ModePraise), mark(flags.Criticism, models.ModeCriticism)})
		}
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "D", 14); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	es.logger.Info("ExportService", "board exported", map[string]interface{}{"rows": len(rows)})
	return nil
}

func mark(on bool, mode models.Mode) string {
	if on {
		return mode.Symbol()
	}
	return ""
}

// WriteFile exports to path. The workbook is built in memory first so a
// failed export does not leave a truncated file behind.
func (es *ExportService) WriteFile(path string, session models.Session, groups [][]string, labels Labeler) error {
	var buf bytes.Buffer
	if err := es.Write(&buf, session, groups, labels); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		es.logger.Error("ExportService", err, map[string]interface{}{"path": path})
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
