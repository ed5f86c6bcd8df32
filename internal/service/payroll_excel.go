package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

type PayrollRow struct {
	MechanicName string
	TotalDays    int
	TotalHours   float64
	AvgHours     float64
	MinHours     float64
	MaxHours     float64
	FirstDay     string
	LastDay      string
}

// WritePayrollExcel writes one payroll summary sheet and returns the file
// path under statics/.
func WritePayrollExcel(rows []PayrollRow) (string, error) {
	targetPath := filepath.Join(baseDir, "payroll")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheet := "Payroll"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Mechanic", "Days Worked", "Total Hours", "Avg Hours/Day", "Min Hours", "Max Hours", "First Day", "Last Day"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.MechanicName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.TotalDays)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.TotalHours)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.AvgHours)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.MinHours)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.MaxHours)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.FirstDay)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.LastDay)
		rowNum++
	}

	fileName := filepath.Join(targetPath, fmt.Sprintf("payroll-%s.xlsx", time.Now().Format("2006-01-02-150405")))
	if err := f.SaveAs(fileName); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	return fileName, nil
}
