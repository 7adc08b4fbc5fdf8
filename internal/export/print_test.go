package export

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/model"
)

// fakeSurface scripts one result per attempt.
type fakeSurface struct {
	results [][]byte
	errs    []error
	calls   int
}

func (f *fakeSurface) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	i := f.calls
	f.calls++
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i], f.errs[i]
}

func printableData() (model.ResumeData, model.ResumeSettings) {
	data := model.DefaultResumeData()
	data.PersonalInfo.Name = "Jane Doe"
	return data, model.DefaultSettings()
}

func TestPrintDocumentShell(t *testing.T) {
	doc := PrintDocument("Jane <Doe>", "<div>body</div>")
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("missing doctype")
	}
	if !strings.Contains(doc, "<title>Jane &lt;Doe&gt; - Resume</title>") {
		t.Error("title not escaped or suffixed")
	}
	if !strings.Contains(doc, "<div>body</div>") {
		t.Error("fragment not embedded")
	}
	// icons are suppressed in the print projection
	if !strings.Contains(doc, "svg {\n  display: none;\n}") {
		t.Error("icon suppression rule missing from stylesheet")
	}
	if !strings.Contains(doc, ".text-blue-600") {
		t.Error("accent classes missing from stylesheet")
	}
}

func TestExportSuccess(t *testing.T) {
	surface := &fakeSurface{results: [][]byte{[]byte("%PDF-1.4 fake")}, errs: []error{nil}}
	e := NewPDFExporter(surface)
	data, settings := printableData()

	pdf, err := e.Export(context.Background(), data, settings)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("result is not a PDF")
	}
	if surface.calls != 1 {
		t.Errorf("calls = %d, want 1", surface.calls)
	}
}

func TestExportRetriesThenSucceeds(t *testing.T) {
	surface := &fakeSurface{
		results: [][]byte{nil, nil, []byte("%PDF-1.4 fake")},
		errs:    []error{errors.New("boom"), errors.New("boom"), nil},
	}
	e := &PDFExporter{Surface: surface, Attempts: 3, Backoff: time.Millisecond}
	data, settings := printableData()

	if _, err := e.Export(context.Background(), data, settings); err != nil {
		t.Fatal(err)
	}
	if surface.calls != 3 {
		t.Errorf("calls = %d, want 3", surface.calls)
	}
}

func TestExportExhaustedReportsPrintSurface(t *testing.T) {
	surface := &fakeSurface{results: [][]byte{nil}, errs: []error{errors.New("no browser")}}
	e := &PDFExporter{Surface: surface, Attempts: 3, Backoff: time.Millisecond}
	data, settings := printableData()

	_, err := e.Export(context.Background(), data, settings)
	if !errors.Is(err, ErrPrintSurface) {
		t.Fatalf("err = %v, want ErrPrintSurface", err)
	}
	if surface.calls != 3 {
		t.Errorf("calls = %d, want 3", surface.calls)
	}
}

func TestExportRejectsNonPDFOutput(t *testing.T) {
	surface := &fakeSurface{results: [][]byte{[]byte("<html>not a pdf</html>")}, errs: []error{nil}}
	e := &PDFExporter{Surface: surface, Attempts: 1, Backoff: time.Millisecond}
	data, settings := printableData()

	if _, err := e.Export(context.Background(), data, settings); !errors.Is(err, ErrPrintSurface) {
		t.Fatalf("err = %v, want ErrPrintSurface", err)
	}
}

func TestExportHonorsCancellation(t *testing.T) {
	surface := &fakeSurface{results: [][]byte{nil}, errs: []error{errors.New("boom")}}
	e := &PDFExporter{Surface: surface, Attempts: 3, Backoff: time.Hour}
	data, settings := printableData()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Export(ctx, data, settings); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestBackupFilename(t *testing.T) {
	now := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)
	if got := BackupFilename(now); got != "resume_backup_2024-03-05.json" {
		t.Errorf("got %q", got)
	}
}
