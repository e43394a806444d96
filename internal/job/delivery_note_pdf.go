package job

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

func buildDeliveryNotePDF(n DeliveryNote, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Delivery note "+n.OrderNumber, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DELIVERY NOTE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Order: %s    Job: %d", safe(n.OrderNumber), n.JobID))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Printed: "+printedAt.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range rows {
			pdf.CellFormat(45, 6, r[0], "", 0, "", false, 0, "")
			pdf.MultiCell(0, 6, safe(r[1]), "", "", false)
		}
		pdf.Ln(4)
	}

	section("Customer", [][2]string{
		{"Name", n.CustomerName},
		{"Phone", n.CustomerPhone},
	})
	section("Shipment", [][2]string{
		{"Description", n.OrderDescription},
		{"Weight (kg)", fmt.Sprintf("%.2f", n.Weight)},
		{"Pick-up", n.PickUpAddress},
		{"Drop-off", n.DropOffAddress},
		{"Pick-up date", n.PickUpDate.Format("2006-01-02 15:04")},
		{"Drop-off date", formatOptional(n.DropOffDate)},
	})
	section("Transport", [][2]string{
		{"Vehicle", strings.TrimSpace(n.RegistrationPlate + " " + n.VehicleBrand + " " + n.VehicleModel)},
		{"Driver", n.DriverName},
	})
	if n.Comment != "" {
		section("Comment", [][2]string{{"", n.Comment}})
	}

	pdf.Ln(12)
	pdf.Cell(90, 6, "Driver signature: ____________")
	pdf.Cell(0, 6, "Recipient signature: ____________")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("delivery-note-%s.pdf", safeFilenamePart(n.OrderNumber)), nil
}

func safe(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func safeFilenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "job"
	}
	return b.String()
}
