package document

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/domain/entities"
	"github.com/aesthetics360/planstudio/pkg/config"
	apperrors "github.com/aesthetics360/planstudio/pkg/errors"
	"github.com/jung-kurt/gofpdf"
)

// A4 output dimensions in millimeters.
const (
	pdfPageWidthMM  = 210.0
	pdfPageHeightMM = 297.0
)

// Exporter renders a plan to a multi-page PDF: each logical page is
// rasterized at the configured supersampling scale and its bitmap is
// sliced across as many output pages as its height requires. Logical
// pages appear in strict source order, and any failure aborts the whole
// export with nothing written.
type Exporter struct {
	builder *Builder
	raster  *Rasterizer
}

// NewExporter creates an exporter with the given export settings.
func NewExporter(cfg config.ExportConfig, pricing *services.PricingService) *Exporter {
	return &Exporter{
		builder: NewBuilder(pricing),
		raster:  NewRasterizer(cfg.PageWidthPx, cfg.PageHeightPx, cfg.Scale),
	}
}

// ExportFilename is the download name for a patient's plan document.
func ExportFilename(patientName string) string {
	return patientName + "-Treatment-Plan.pdf"
}

// Export writes the complete PDF for a plan. Nothing is written to w
// until every page has rendered successfully.
func (e *Exporter) Export(w io.Writer, plan *entities.Plan, catalog *entities.CatalogDefinition, lang string) error {
	layout, err := e.builder.Build(plan, catalog, lang)
	if err != nil {
		return err
	}
	if len(layout.Pages) == 0 {
		return apperrors.NewValidationError("preview unavailable")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	sliceHeight := e.raster.SliceHeight()
	for pageIdx, page := range layout.Pages {
		bitmap := e.raster.Render(page)
		if err := e.addSlices(pdf, bitmap, sliceHeight, pageIdx); err != nil {
			return err
		}
	}

	if pdf.Err() {
		return apperrors.NewInternalError("pdf assembly failed", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return apperrors.NewInternalError("pdf output failed", err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// addSlices splits one logical page's bitmap into page-height slices
// and places each on its own PDF page.
func (e *Exporter) addSlices(pdf *gofpdf.Fpdf, bitmap *image.RGBA, sliceHeight, pageIdx int) error {
	bounds := bitmap.Bounds()
	slices := PageCount(bounds.Dy(), sliceHeight)

	for s := 0; s < slices; s++ {
		top := bounds.Min.Y + s*sliceHeight
		bottom := top + sliceHeight
		if bottom > bounds.Max.Y {
			bottom = bounds.Max.Y
		}
		slice := bitmap.SubImage(image.Rect(bounds.Min.X, top, bounds.Max.X, bottom))

		var encoded bytes.Buffer
		if err := png.Encode(&encoded, slice); err != nil {
			return apperrors.NewInternalError("page rasterization failed", err)
		}

		name := fmt.Sprintf("page-%d-slice-%d", pageIdx, s)
		pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, &encoded)
		if pdf.Err() {
			return apperrors.NewInternalError("pdf image registration failed", pdf.Error())
		}

		heightMM := pdfPageHeightMM * float64(bottom-top) / float64(sliceHeight)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, pdfPageWidthMM, heightMM, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		if pdf.Err() {
			return apperrors.NewInternalError("pdf page assembly failed", pdf.Error())
		}
	}
	return nil
}
