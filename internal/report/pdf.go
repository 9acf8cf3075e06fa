package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	creator   = "runplot"
	pageMm    = 10.0
	imageType = "PNG"
)

// EncodePDF writes the document as a landscape A4 PDF, one chart per page, and
// returns the number of pages written.
func EncodePDF(doc *Document, w io.Writer) (int, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(creator, true)
	pdf.SetSubject(string(doc.Kind), true)
	pdf.SetCreationDate(doc.CreatedAt)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)

	pageW, pageH := pdf.GetPageSize()
	for i, p := range doc.Pages {
		pdf.AddPage()
		if p.Empty() {
			writeEmptyPage(pdf, p)
			continue
		}

		img, err := RenderPNG(p)
		if err != nil {
			return 0, err
		}
		name := fmt.Sprintf("page-%03d", i+1)
		opts := fpdf.ImageOptions{ImageType: imageType}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))

		imgW, imgH := fit(pageW-2*pageMm, pageH-2*pageMm)
		pdf.ImageOptions(name, (pageW-imgW)/2, (pageH-imgH)/2, imgW, imgH, false, opts, 0, "")
		if err := pdf.Error(); err != nil {
			return 0, fmt.Errorf("place page %d: %w", i+1, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("encode pdf: %w", err)
	}
	return pdf.PageCount(), nil
}

// fit scales the chart aspect ratio into the available box.
func fit(maxW, maxH float64) (w, h float64) {
	scale := min(maxW/ChartWidth, maxH/ChartHeight)
	return ChartWidth * scale, ChartHeight * scale
}

func writeEmptyPage(pdf *fpdf.Fpdf, p Page) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, p.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s by %s: no data", p.YLabel, p.XLabel), "", 1, "C", false, 0, "")
}

// WritePDF encodes the document into path atomically.
func WritePDF(doc *Document, path string) error {
	return writeAtomic(path, func(w io.Writer) error {
		_, err := EncodePDF(doc, w)
		return err
	})
}
