package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeReportPDF renders a minimal PDF from the composite Markdown report,
// preserving headings and table rows as plain lines. This is intentionally
// simple and does not perform full Markdown layout.
func writeReportPDF(markdown string, outPath string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(markdown))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(s, "#") {
			i := 0
			for i < len(s) && s[i] == '#' {
				i++
			}
			text := strings.TrimSpace(s[i:])
			if text == "" {
				continue
			}
			size := 14.0
			if i >= 2 {
				size = 11.0
			}
			pdf.SetFont("Helvetica", "B", size)
			pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			continue
		}
		// Table separator rows carry no content worth printing.
		if strings.HasPrefix(s, "|--") || strings.HasPrefix(s, "|-") {
			continue
		}
		pdf.MultiCell(0, 4.5, s, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}
