package infra

// pdf.go — Generación del PDF de cotización con go-pdf/fpdf.
// Documento A4 con encabezado del negocio, datos del cliente, tabla de líneas
// (descripción, cantidad, precio unitario, subtotal) y total en negrita.
// El archivo queda en storagePath/cotizacion_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
)

// GenerateCotizacionPDF renders the quote document and returns the absolute
// path of the written file.
func GenerateCotizacionPDF(cot *model.Cotizacion, nombreNegocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("cotizacion_%d.pdf", cot.Numero)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Encabezado ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, nombreNegocio, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Cotización N° %d", cot.Numero), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Fecha: "+cot.CreatedAt.Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Cliente ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Cliente: "+cot.ClienteNombre, "", 1, "L", false, 0, "")
	if cot.ClienteEmail != nil && *cot.ClienteEmail != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, *cot.ClienteEmail, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Tabla de líneas ──────────────────────────────────────────────────────
	col1 := contentW * 0.50 // descripción
	col2 := contentW * 0.12 // cantidad
	col3 := contentW * 0.19 // precio unitario
	col4 := contentW * 0.19 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(col1, 7, "Descripción", "1", 0, "L", true, 0, "")
	pdf.CellFormat(col2, 7, "Cant.", "1", 0, "C", true, 0, "")
	pdf.CellFormat(col3, 7, "P. Unitario", "1", 0, "R", true, 0, "")
	pdf.CellFormat(col4, 7, "Subtotal", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, linea := range cot.Items {
		desc := linea.Descripcion
		if runas := []rune(desc); len(runas) > 55 {
			desc = string(runas[:54]) + "…"
		}
		pdf.CellFormat(col1, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", linea.Cantidad), "1", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+linea.PrecioUnit.StringFixed(0), "1", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "$"+linea.Subtotal.StringFixed(0), "1", 1, "R", false, 0, "")
	}

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 8, "TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 8, "$"+cot.Total.StringFixed(0), "1", 1, "R", false, 0, "")

	// ── Pie ──────────────────────────────────────────────────────────────────
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Cotización válida por 7 días. Precios sujetos a cambio sin previo aviso.", "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
