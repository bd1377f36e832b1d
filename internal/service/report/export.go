package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luvitbd/attendance-app-go/internal/domain/report"
)

var exportHeader = []any{
	"Username",
	"Role",
	"Zone",
	"Total Working Days",
	"Holidays",
	"Approved Leaves",
	"Absent",
	"Extra Days",
	"Total Check-Ins",
	"Late Check-Ins",
	"Late Check-Outs",
	"Late Adjustment",
}

// ExportMonthlyReport implements report.ReportService. It renders the
// same rows MonthlyReport computes as an xlsx workbook.
func (s *ReportServiceImpl) ExportMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	rep, err := s.MonthlyReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Monthly Report"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write export header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
		f.SetCellStyle(sheet, "A1", lastCol, headerStyle)
	}

	for i, row := range rep.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", err
		}
		values := []any{
			row.Username,
			string(row.Role),
			row.Zone,
			row.TotalWorkingDays,
			row.Holidays,
			row.ApprovedLeaves,
			row.Absent,
			row.ExtraDays,
			row.TotalCheckIns,
			row.LateCheckIns,
			row.LateCheckOuts,
			row.LateAdjustment,
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render export workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-report-%04d-%02d.xlsx", req.Year, req.Month)
	return buf.Bytes(), filename, nil
}
