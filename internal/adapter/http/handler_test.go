package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/suggest"
)

type stubSurface struct {
	pdf []byte
	err error
}

func (s stubSurface) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	return s.pdf, s.err
}

func newTestApp(surface export.PrintSurface) (*fiber.App, *usecase.Session) {
	session := usecase.NewSession(model.DefaultResumeData(), model.DefaultSettings(), nil, nil)
	exporter := &export.PDFExporter{Surface: surface, Attempts: 1}
	h := NewHandler(session, exporter, suggest.New(1, 0))
	app := fiber.New()
	h.Register(app)
	return app, session
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestGetResumeDefaults(t *testing.T) {
	app, _ := newTestApp(stubSurface{})
	resp := doJSON(t, app, "GET", "/resume", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var data model.ResumeData
	decode(t, resp, &data)
	if data.Education == nil || len(data.Education) != 0 {
		t.Errorf("default resume education = %#v", data.Education)
	}
}

func TestSummaryRoundTrip(t *testing.T) {
	app, session := newTestApp(stubSurface{})
	resp := doJSON(t, app, "PUT", "/resume/summary", map[string]string{"summary": "Backend engineer."})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := session.Data().Summary; got != "Backend engineer." {
		t.Errorf("summary = %q", got)
	}
}

func TestSectionLifecycle(t *testing.T) {
	app, session := newTestApp(stubSurface{})

	resp := doJSON(t, app, "POST", "/resume/experience", nil)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("add status = %d", resp.StatusCode)
	}
	var entry model.Experience
	decode(t, resp, &entry)
	if entry.ID == "" || len(entry.Description) != 1 {
		t.Fatalf("new entry = %+v", entry)
	}

	entry.Company = "Acme Corp"
	entry.Position = "Senior Engineer"
	resp = doJSON(t, app, "PUT", "/resume/experience/"+entry.ID, entry)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	if got := session.Data().Experience[0].Company; got != "Acme Corp" {
		t.Errorf("company = %q", got)
	}

	resp = doJSON(t, app, "PUT", "/resume/experience/nope", entry)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, "DELETE", "/resume/experience/"+entry.ID, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	if len(session.Data().Experience) != 0 {
		t.Error("entry not removed")
	}
}

func TestSettingsEndpoint(t *testing.T) {
	app, _ := newTestApp(stubSurface{})
	settings := model.DefaultSettings()
	settings.Template = model.TemplateTech
	settings.DarkMode = true

	resp := doJSON(t, app, "PUT", "/settings", settings)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	resp = doJSON(t, app, "GET", "/settings", nil)
	var got model.ResumeSettings
	decode(t, resp, &got)
	if got.Template != model.TemplateTech || !got.DarkMode {
		t.Errorf("settings = %+v", got)
	}
}

func TestPreviewReturnsHTML(t *testing.T) {
	app, session := newTestApp(stubSurface{})
	session.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp := doJSON(t, app, "GET", "/preview", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "Jane Doe") {
		t.Error("preview missing resume content")
	}
}

func TestExportMarkdownRequiresName(t *testing.T) {
	app, session := newTestApp(stubSurface{})

	resp := doJSON(t, app, "GET", "/export/markdown", nil)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("nameless export status = %d, want 400", resp.StatusCode)
	}

	session.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})
	resp = doJSON(t, app, "GET", "/export/markdown", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "Jane_Doe_Resume.md") {
		t.Errorf("content disposition = %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.HasPrefix(string(body), "# Jane Doe") {
		t.Error("markdown body mismatch")
	}
}

func TestExportPDF(t *testing.T) {
	app, session := newTestApp(stubSurface{pdf: []byte("%PDF-1.4 fake")})
	session.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp := doJSON(t, app, "GET", "/export/pdf", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "Jane_Doe_Resume.pdf") || strings.Contains(cd, ".md") {
		t.Errorf("content disposition = %q", cd)
	}
}

func TestExportPDFSurfaceFailure(t *testing.T) {
	app, session := newTestApp(stubSurface{err: errors.New("no browser")})
	session.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp := doJSON(t, app, "GET", "/export/pdf", nil)
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestBackupDownloadAndImport(t *testing.T) {
	app, session := newTestApp(stubSurface{})
	session.SetPersonalInfo(model.PersonalInfo{Name: "Jane Doe"})

	resp := doJSON(t, app, "GET", "/backup", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("download status = %d", resp.StatusCode)
	}
	payload, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	fresh, freshSession := newTestApp(stubSurface{})
	req := httptest.NewRequest("POST", "/backup", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	importResp, err := fresh.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if importResp.StatusCode != fiber.StatusOK {
		t.Fatalf("import status = %d", importResp.StatusCode)
	}
	if got := freshSession.Data().PersonalInfo.Name; got != "Jane Doe" {
		t.Errorf("restored name = %q", got)
	}
}

func TestBackupImportRejectsMalformed(t *testing.T) {
	app, session := newTestApp(stubSurface{})
	session.SetSummary("keep me")

	req := httptest.NewRequest("POST", "/backup", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if got := session.Data().Summary; got != "keep me" {
		t.Error("failed import mutated state")
	}
}

func TestSuggestions(t *testing.T) {
	app, session := newTestApp(stubSurface{})

	resp := doJSON(t, app, "POST", "/suggestions", map[string]string{"text": ""})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, "POST", "/suggestions", map[string]string{"text": "managed the platform team"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	decode(t, resp, &out)
	if len(out.Suggestions) != 3 {
		t.Fatalf("got %d suggestions", len(out.Suggestions))
	}

	resp = doJSON(t, app, "POST", "/suggestions/apply", map[string]string{"text": out.Suggestions[0]})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("apply status = %d", resp.StatusCode)
	}
	if got := session.Data().Summary; got != out.Suggestions[0] {
		t.Errorf("summary = %q", got)
	}
}
