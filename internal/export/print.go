package export

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/render"
)

//go:embed assets/print.css
var printCSS string

// ErrPrintSurface reports that the headless print surface could not be
// opened or driven. The caller owns the user-facing message.
var ErrPrintSurface = errors.New("could not open print surface")

// ErrNameRequired reports an export attempt on a resume with no name to
// derive a filename from.
var ErrNameRequired = errors.New("add your name before exporting")

// PrintSurface drives the platform's native print-to-PDF pipeline on a
// standalone HTML document.
type PrintSurface interface {
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
}

// PrintDocument re-hosts an already-rendered preview fragment inside an
// isolated document shell with the reduced print stylesheet. This is a
// projection, not a pixel-perfect export: only the utility classes in the
// stylesheet subset are honored, and decorative icons are suppressed.
func PrintDocument(title, fragment string) string {
	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	doc.WriteString("<title>" + html.EscapeString(title) + " - Resume</title>\n")
	doc.WriteString("<style>\n" + printCSS + "</style>\n")
	doc.WriteString("</head>\n<body>\n")
	doc.WriteString(fragment)
	doc.WriteString("\n</body>\n</html>\n")
	return doc.String()
}

// PDFExporter renders the selected template and drives it through the print
// surface with retry and output validation.
type PDFExporter struct {
	Surface  PrintSurface
	Attempts int
	Backoff  time.Duration
}

func NewPDFExporter(surface PrintSurface) *PDFExporter {
	return &PDFExporter{Surface: surface, Attempts: 3, Backoff: time.Second}
}

// Export produces the PDF bytes for the currently selected template.
func (e *PDFExporter) Export(ctx context.Context, data model.ResumeData, settings model.ResumeSettings) ([]byte, error) {
	fragment, err := render.Render(data, settings)
	if err != nil {
		return nil, err
	}
	doc := PrintDocument(data.PersonalInfo.Name, fragment)

	attempts := e.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var pdf []byte
	var printErr error
	for i := 0; i < attempts; i++ {
		pdf, printErr = e.Surface.PrintToPDF(ctx, doc)
		if printErr == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				return pdf, nil
			}
			printErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * e.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrPrintSurface, printErr)
}

// BackupFilename builds the download name for a backup snapshot.
func BackupFilename(now time.Time) string {
	return "resume_backup_" + now.UTC().Format("2006-01-02") + ".json"
}
