package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePayrollExcel(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	rows := []PayrollRow{
		{MechanicName: "Marco", TotalDays: 5, TotalHours: 42.5, AvgHours: 8.5, MinHours: 7, MaxHours: 10, FirstDay: "2026-08-03", LastDay: "2026-08-07"},
		{MechanicName: "Luis", TotalDays: 4, TotalHours: 30, AvgHours: 7.5, MinHours: 6, MaxHours: 9, FirstDay: "2026-08-03", LastDay: "2026-08-06"},
	}

	fileName, err := WritePayrollExcel(rows)
	require.NoError(t, err)

	f, err := excelize.OpenFile(fileName)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Payroll", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Mechanic", header)

	name, err := f.GetCellValue("Payroll", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Marco", name)

	total, err := f.GetCellValue("Payroll", "C2")
	require.NoError(t, err)
	assert.Equal(t, "42.5", total)

	secondName, err := f.GetCellValue("Payroll", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Luis", secondName)
}

func TestWritePayrollExcelEmpty(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	fileName, err := WritePayrollExcel(nil)
	require.NoError(t, err)

	_, err = os.Stat(fileName)
	assert.NoError(t, err)
}
