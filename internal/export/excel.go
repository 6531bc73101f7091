// Package export renders the application ledger as an Excel workbook for
// the dashboard's download endpoint.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/aspk74/auto-apply/internal/applog"
	"github.com/aspk74/auto-apply/internal/usecase"
)

// Workbook builds a two-sheet report: Summary metrics and the full
// Applications table, returned as bytes ready to stream.
func Workbook(overview usecase.Overview, entries []applog.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	appsSheet := "Applications"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(appsSheet); err != nil {
		return nil, fmt.Errorf("create applications sheet: %w", err)
	}

	if err := writeSummarySheet(f, summarySheet, overview); err != nil {
		return nil, err
	}
	if err := writeApplicationsSheet(f, appsSheet, entries); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, overview usecase.Overview) error {
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 20)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "AutoApply Report")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.MergeCell(sheet, "A1", "B1")
	f.SetCellValue(sheet, "A2", "Generated")
	f.SetCellValue(sheet, "B2", time.Now().Format("2006-01-02 15:04"))

	rows := []struct {
		label string
		value string
	}{
		{"Total Applications", strconv.Itoa(overview.TotalApplications)},
		{"Last 7 Days", strconv.Itoa(overview.LastSevenDays)},
		{"Response Rate", fmt.Sprintf("%.1f%%", overview.ResponseRate)},
		{"Interview Rate", fmt.Sprintf("%.1f%%", overview.InterviewRate)},
	}
	for i, r := range rows {
		row := i + 4
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.label)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.value)
	}
	return nil
}

func writeApplicationsSheet(f *excelize.File, sheet string, entries []applog.Entry) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	headers := []string{"Job ID", "Company", "Title", "Location", "Source", "Applied At", "Status", "Response Received", "Notes"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "F", 20)
	_ = f.SetColWidth(sheet, "C", "C", 36)

	for i, e := range entries {
		row := i + 2
		values := []interface{}{
			e.JobID, e.Company, e.Title, e.Location, e.Source,
			e.AppliedAt.Format(time.RFC3339), e.Status, e.ResponseReceived, e.Notes,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}
