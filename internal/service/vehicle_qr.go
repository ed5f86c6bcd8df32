package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type VehicleQrEntry struct {
	VehicleID int
	Brand     string
	Model     string
	Year      int
}

// WriteVehicleQrPdf lays the shop's vehicle QR labels out on A4 pages, three
// columns per row, and returns the generated file path. Each code embeds the
// session-start deep link for that vehicle.
func WriteVehicleQrPdf(baseURL string, vehicles []VehicleQrEntry) (string, error) {
	targetPath := filepath.Join(baseDir, "qrcodes")
	if err := os.MkdirAll(targetPath, os.ModePerm); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	const (
		cellW   = 60.0
		cellH   = 75.0
		qrSize  = 50.0
		marginX = 15.0
		marginY = 15.0
		perRow  = 3
	)

	for i, v := range vehicles {
		col := i % perRow
		row := (i / perRow) % 3
		if i > 0 && col == 0 && row == 0 {
			pdf.AddPage()
		}

		x := marginX + float64(col)*cellW
		y := marginY + float64(row)*cellH

		link := fmt.Sprintf("%s/session/start?vehicle_id=%d", baseURL, v.VehicleID)
		png, err := qrcode.Encode(link, qrcode.Medium, 256)
		if err != nil {
			return "", fmt.Errorf("encoding qr for vehicle %d: %w", v.VehicleID, err)
		}

		imageName := fmt.Sprintf("vehicle-%d", v.VehicleID)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(png))
		pdf.ImageOptions(imageName, x+(cellW-qrSize)/2, y, qrSize, qrSize, false, opts, 0, "")

		label := fmt.Sprintf("%s %s %d", v.Brand, v.Model, v.Year)
		pdf.SetXY(x, y+qrSize+2)
		pdf.CellFormat(cellW, 6, label, "", 0, "C", false, 0, "")
	}

	fileName := filepath.Join(targetPath, fmt.Sprintf("vehicles-%s.pdf", time.Now().Format("2006-01-02-150405")))
	if err := pdf.OutputFileAndClose(fileName); err != nil {
		return "", fmt.Errorf("error saving pdf: %w", err)
	}
	return fileName, nil
}
