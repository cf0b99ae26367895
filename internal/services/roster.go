package services

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"praise-board/internal/logger"

	"github.com/xuri/excelize/v2"
)

// rosterHeaders are first-row cells treated as a column title in spreadsheets
var rosterHeaders = map[string]bool{"姓名": true, "名字": true, "name": true, "student": true}

// RosterService loads the fixed student name list
type RosterService struct {
	logger logger.Logger
}

func NewRosterService(log logger.Logger) *RosterService {
	return &RosterService{logger: log}
}

// Load reads names from a text file (one per line) or, for .xlsx files,
// from the first column of the first sheet.
func (rs *RosterService) Load(path string) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		names, err = rs.loadWorkbook(path)
	default:
		names, err = rs.loadText(path)
	}
	if err != nil {
		rs.logger.Error("RosterService", err, map[string]interface{}{"path": path})
		return nil, err
	}

	rs.logger.Info("RosterService", "roster loaded", map[string]interface{}{
		"path":  path,
		"count": len(names),
	})
	return names, nil
}

func (rs *RosterService) loadText(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer file.Close()

	var names []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\ufeff"))
		if name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return names, nil
}

func (rs *RosterService) loadWorkbook(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rs.logger.Warning("RosterService", "workbook close failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("roster workbook %s has no sheets", filepath.Base(path))
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	var names []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		if i == 0 && rosterHeaders[strings.ToLower(name)] {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
