package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"factory-ops/internal/service/incentive"
	"factory-ops/internal/storage"
)

type ReportStorage interface {
	ListWorkerReportRows(ctx context.Context) ([]storage.WorkerReportRow, error)
}

type Service struct {
	storage ReportStorage
}

func NewService(storage ReportStorage) *Service {
	return &Service{storage: storage}
}

// MonthlyReport renders per-worker monthly production and the bonus under
// the requested policy into an xlsx workbook.
func (s *Service) MonthlyReport(ctx context.Context, policy incentive.Policy) ([]byte, error) {
	const op = "service.report.MonthlyReport"

	workers, err := s.storage.ListWorkerReportRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Production Report"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Worker", "Department", "Daily Target", "Monthly Production",
		"Cumulative Production", "Target Met", "Bonus"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}

	lastCol, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, row := range workers {
		rowNum := rowIdx + 2

		worker := storage.Worker{
			DailyTarget:       row.DailyTarget,
			MonthlyProduction: row.MonthlyProduction,
			BonusPercentage:   row.BonusPercentage,
			MonthlySalary:     row.MonthlySalary,
		}
		bonus := incentive.Bonus(&worker, policy)

		targetMet := "no"
		if row.DailyTarget > 0 && row.MonthlyProduction >= row.DailyTarget {
			targetMet = "yes"
		}

		f.SetCellValue(sheet, cellName(1, rowNum), row.WorkerName)
		f.SetCellValue(sheet, cellName(2, rowNum), row.DepartmentName)
		f.SetCellValue(sheet, cellName(3, rowNum), row.DailyTarget)
		f.SetCellValue(sheet, cellName(4, rowNum), row.MonthlyProduction)
		f.SetCellValue(sheet, cellName(5, rowNum), row.CumulativeProduction)
		f.SetCellValue(sheet, cellName(6, rowNum), targetMet)
		f.SetCellValue(sheet, cellName(7, rowNum), bonus)
	}

	f.SetColWidth(sheet, "A", "B", 24)
	f.SetColWidth(sheet, "C", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
