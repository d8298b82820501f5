package permission

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// buildCertificate genera la constancia PDF de un permiso aprobado.
func buildCertificate(p PermissionRequest) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Constancia de Permiso Laboral")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Radicado: %s", p.RequestNumber))
	pdf.Ln(7)
	if p.Employee != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Empleado: %s", p.Employee.FullName))
		pdf.Ln(7)
	}
	if p.Department != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Area: %s", p.Department))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Tipo de permiso: %s", p.PermissionType))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s a %s (%d dias)",
		p.StartDate.Format("2006-01-02"),
		p.EndDate.Format("2006-01-02"),
		p.TotalDays,
	))
	pdf.Ln(7)
	if p.ApprovedAt != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Aprobado el: %s", p.ApprovedAt.Format("2006-01-02")))
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Documento generado el %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
