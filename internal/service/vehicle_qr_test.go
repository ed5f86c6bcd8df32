package service

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVehicleQrPdf(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	vehicles := []VehicleQrEntry{
		{VehicleID: 1, Brand: "Toyota", Model: "Corolla", Year: 2018},
		{VehicleID: 2, Brand: "Ford", Model: "F-150", Year: 2021},
		{VehicleID: 3, Brand: "Honda", Model: "Civic", Year: 2015},
		{VehicleID: 4, Brand: "Nissan", Model: "Sentra", Year: 2019},
	}

	fileName, err := WriteVehicleQrPdf("http://localhost:8080", vehicles)
	require.NoError(t, err)

	info, err := os.Stat(fileName)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteVehicleQrPdfEmpty(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	fileName, err := WriteVehicleQrPdf("http://localhost:8080", nil)
	require.NoError(t, err)

	_, err = os.Stat(fileName)
	assert.NoError(t, err)
}
