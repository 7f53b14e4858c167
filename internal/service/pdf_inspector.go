package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var errEmptyPDF = errors.New("file is empty")

// PDFInspector validates persisted uploads with pdfcpu. Its verdict explains
// extraction failures; it never blocks a file an engine can read.
type PDFInspector struct {
	conf *model.Configuration
}

// NewPDFInspector creates an inspector using relaxed validation, which accepts
// the minor spec violations common in real-world PDFs.
func NewPDFInspector() *PDFInspector {
	// Keep pdfcpu from creating a config directory under the user's home.
	api.DisableConfigDir()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFInspector{conf: conf}
}

// Inspect implements domain.PDFInspector.
func (i *PDFInspector) Inspect(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.Size() == 0 {
		return 0, errEmptyPDF
	}

	if err := api.ValidateFile(path, i.conf); err != nil {
		return 0, fmt.Errorf("invalid PDF: %w", err)
	}
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return pageCount, nil
}
