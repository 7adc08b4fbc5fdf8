package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/export"
)

// ExportMarkdown serializes the resume to Markdown and serves it as a
// download. A resume with no name has nothing to name the file after, so the
// export is refused.
func (h *Handler) ExportMarkdown(c *fiber.Ctx) error {
	data := h.session.Data()
	if strings.TrimSpace(data.PersonalInfo.Name) == "" {
		return badRequest(c, export.ErrNameRequired.Error())
	}

	md := export.ToMarkdown(data)
	c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.MarkdownFilename(data.PersonalInfo.Name)+`"`)
	return c.SendString(md)
}

// ExportPDF drives the rendered preview through the print surface.
func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	data, settings := h.session.Snapshot()
	if strings.TrimSpace(data.PersonalInfo.Name) == "" {
		return badRequest(c, export.ErrNameRequired.Error())
	}

	pdf, err := h.exporter.Export(c.Context(), data, settings)
	if err != nil {
		if errors.Is(err, export.ErrPrintSurface) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "could not open print surface"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.PDFFilename(data.PersonalInfo.Name)+`"`)
	return c.Send(pdf)
}

// DownloadBackup serves the full session snapshot as a dated JSON file.
func (h *Handler) DownloadBackup(c *fiber.Ctx) error {
	payload, err := h.session.ExportBackup(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.BackupFilename(time.Now())+`"`)
	return c.Send(payload)
}

// ImportBackup restores a previously downloaded snapshot. A payload that
// fails validation leaves current state untouched.
func (h *Handler) ImportBackup(c *fiber.Ctx) error {
	if err := h.session.ImportBackup(c.Body()); err != nil {
		return badRequest(c, "invalid backup file: "+err.Error())
	}
	data, settings := h.session.Snapshot()
	return c.JSON(fiber.Map{"resumeData": data, "settings": settings})
}

type suggestReq struct {
	Text string `json:"text"`
}

// GenerateSuggestions returns alternative phrasings for the given text.
func (h *Handler) GenerateSuggestions(c *fiber.Ctx) error {
	var req suggestReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	suggestions, err := h.suggester.Suggest(c.Context(), req.Text)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// ApplySuggestion writes the chosen suggestion into the summary.
func (h *Handler) ApplySuggestion(c *fiber.Ctx) error {
	var req suggestReq
	if err := c.BodyParser(&req); err != nil || req.Text == "" {
		return badRequest(c, "text required")
	}
	h.session.ApplySuggestion(req.Text)
	return c.JSON(h.session.Data())
}
