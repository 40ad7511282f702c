// Package report renders the monthly maintenance report as a PDF.
package report

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"
	"unicode/utf16"

	"github.com/go-pdf/fpdf"

	"github.com/comdominio/dashboard/internal/domain"
)

const (
	dateLayout          = "02/01/2006"
	descriptionMaxUnits = 50
)

// column is one table column: header text and width in millimetres.
type column struct {
	title string
	width float64
}

var columns = []column{
	{"Nome", 40},
	{"Tipo", 25},
	{"Data Conclusão", 25},
	{"Data Prazo", 25},
	{"Descrição", 75},
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName returns the download name of a monthly report, e.g.
// relatorio_Residencial_Aurora_Março_2025.pdf.
func FileName(condominium string, month time.Month, year int) string {
	return "relatorio_" + whitespace.ReplaceAllString(condominium, "_") + "_" +
		domain.MonthName(month) + "_" + strconv.Itoa(year) + ".pdf"
}

// RenderMonthly writes r to w as an A4 PDF: a header block with the
// condominium, period, generation date and total, followed by a table of
// the completed maintenances or a notice when there are none.
func RenderMonthly(w io.Writer, r domain.MonthlyReport) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório Mensal de Manutenções", true)
	pdf.SetCreationDate(r.GeneratedAt)
	// Core fonts are cp1252; translate so accented text renders.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(0, 15)
	pdf.CellFormat(210, 10, tr("Relatório Mensal de Manutenções"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Condomínio: " + r.Condominium,
		fmt.Sprintf("Período: %s de %d", domain.MonthName(r.Month), r.Year),
		"Data de geração: " + r.GeneratedAt.Format(dateLayout),
		fmt.Sprintf("Total de manutenções concluídas: %d", len(r.Maintenances)),
	}
	for i, line := range lines {
		pdf.Text(20, float64(40+10*i), tr(line))
	}

	if len(r.Maintenances) == 0 {
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(20, 90, tr("Nenhuma manutenção foi concluída neste período."))
		return output(pdf, w)
	}

	pdf.SetXY(10, 85)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range columns {
		pdf.CellFormat(c.width, 8, tr(c.title), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, m := range r.Maintenances {
		for i, cell := range Row(m) {
			pdf.CellFormat(columns[i].width, 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf, w)
}

// Row returns the table cells for one maintenance.
func Row(m domain.Maintenance) []string {
	kind := "Única"
	if m.Recurrence.IsRecurring() {
		kind = "Recorrente"
	}
	deadline := "N/A"
	if m.EndDate != nil {
		deadline = m.EndDate.Format(dateLayout)
	}
	return []string{
		m.Name,
		kind,
		m.UpdatedAt.Format(dateLayout),
		deadline,
		truncate(m.Description, descriptionMaxUnits),
	}
}

// truncate shortens s to n UTF-16 code units, the length the dashboard
// measures, marking the cut with an ellipsis. A surrogate pair straddling
// the cut is dropped whole.
func truncate(s string, n int) string {
	units := utf16.Encode([]rune(s))
	if len(units) <= n {
		return s
	}
	cut := units[:n]
	if utf16.IsSurrogate(rune(cut[n-1])) && cut[n-1] < 0xdc00 {
		cut = cut[:n-1]
	}
	return string(utf16.Decode(cut)) + "..."
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("report.RenderMonthly: %w", err)
	}
	return nil
}
