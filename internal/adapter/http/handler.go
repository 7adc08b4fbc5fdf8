package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/export"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/suggest"
)

type Handler struct {
	session   *usecase.Session
	exporter  *export.PDFExporter
	suggester *suggest.Generator
}

func NewHandler(s *usecase.Session, e *export.PDFExporter, g *suggest.Generator) *Handler {
	return &Handler{session: s, exporter: e, suggester: g}
}

// Register wires every route onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/resume", h.GetResume)
	app.Put("/resume", h.ReplaceResume)
	app.Put("/resume/personal-info", h.SetPersonalInfo)
	app.Put("/resume/summary", h.SetSummary)

	app.Post("/resume/education", h.AddEducation)
	app.Put("/resume/education/:id", h.UpdateEducation)
	app.Delete("/resume/education/:id", h.RemoveEducation)

	app.Post("/resume/experience", h.AddExperience)
	app.Put("/resume/experience/:id", h.UpdateExperience)
	app.Delete("/resume/experience/:id", h.RemoveExperience)
	app.Post("/resume/experience/:id/bullets", h.AddExperienceBullet)
	app.Put("/resume/experience/:id/bullets/:index", h.UpdateExperienceBullet)
	app.Delete("/resume/experience/:id/bullets/:index", h.RemoveExperienceBullet)

	app.Post("/resume/projects", h.AddProject)
	app.Put("/resume/projects/:id", h.UpdateProject)
	app.Delete("/resume/projects/:id", h.RemoveProject)
	app.Post("/resume/projects/:id/technologies", h.AddProjectTechnology)
	app.Delete("/resume/projects/:id/technologies", h.RemoveProjectTechnology)

	app.Post("/resume/skills", h.AddSkillGroup)
	app.Put("/resume/skills/:index", h.UpdateSkillGroup)
	app.Delete("/resume/skills/:index", h.RemoveSkillGroup)
	app.Post("/resume/skills/:index/items", h.AddSkillItem)
	app.Delete("/resume/skills/:index/items", h.RemoveSkillItem)

	app.Post("/resume/certifications", h.AddCertification)
	app.Put("/resume/certifications/:id", h.UpdateCertification)
	app.Delete("/resume/certifications/:id", h.RemoveCertification)

	app.Post("/resume/languages", h.AddLanguage)
	app.Put("/resume/languages/:index", h.UpdateLanguage)
	app.Delete("/resume/languages/:index", h.RemoveLanguage)

	app.Post("/resume/awards", h.AddAward)
	app.Put("/resume/awards/:id", h.UpdateAward)
	app.Delete("/resume/awards/:id", h.RemoveAward)

	app.Get("/settings", h.GetSettings)
	app.Put("/settings", h.SetSettings)

	app.Get("/preview", h.Preview)
	app.Get("/export/markdown", h.ExportMarkdown)
	app.Get("/export/pdf", h.ExportPDF)
	app.Get("/backup", h.DownloadBackup)
	app.Post("/backup", h.ImportBackup)

	app.Post("/suggestions", h.GenerateSuggestions)
	app.Post("/suggestions/apply", h.ApplySuggestion)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// sectionErr maps a usecase failure to 404 for missing entries, 500 otherwise.
func sectionErr(c *fiber.Ctx, err error) error {
	if _, ok := err.(*usecase.ErrNotFound); ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func parseIndex(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("index"))
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.session.Data())
}

func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	var data model.ResumeData
	if err := c.BodyParser(&data); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetData(data)
	return c.JSON(h.session.Data())
}

func (h *Handler) SetPersonalInfo(c *fiber.Ctx) error {
	var pi model.PersonalInfo
	if err := c.BodyParser(&pi); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetPersonalInfo(pi)
	return c.JSON(h.session.Data())
}

type summaryReq struct {
	Summary string `json:"summary"`
}

func (h *Handler) SetSummary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetSummary(req.Summary)
	return c.JSON(h.session.Data())
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddEducation())
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var entry model.Education
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateEducation(c.Params("id"), entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	if err := h.session.RemoveEducation(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddExperience())
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var entry model.Experience
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateExperience(c.Params("id"), entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	if err := h.session.RemoveExperience(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddExperienceBullet(c *fiber.Ctx) error {
	if err := h.session.AddExperienceBullet(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

type bulletReq struct {
	Text string `json:"text"`
}

func (h *Handler) UpdateExperienceBullet(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	var req bulletReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateExperienceBullet(c.Params("id"), index, req.Text); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveExperienceBullet(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	if err := h.session.RemoveExperienceBullet(c.Params("id"), index); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddProject(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddProject())
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var entry model.Project
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateProject(c.Params("id"), entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveProject(c *fiber.Ctx) error {
	if err := h.session.RemoveProject(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

type techReq struct {
	Technology string `json:"technology"`
}

func (h *Handler) AddProjectTechnology(c *fiber.Ctx) error {
	var req techReq
	if err := c.BodyParser(&req); err != nil || req.Technology == "" {
		return badRequest(c, "technology required")
	}
	if err := h.session.AddProjectTechnology(c.Params("id"), req.Technology); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveProjectTechnology(c *fiber.Ctx) error {
	var req techReq
	if err := c.BodyParser(&req); err != nil || req.Technology == "" {
		return badRequest(c, "technology required")
	}
	if err := h.session.RemoveProjectTechnology(c.Params("id"), req.Technology); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddSkillGroup(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddSkillGroup())
}

func (h *Handler) UpdateSkillGroup(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	var entry model.Skill
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateSkillGroup(index, entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveSkillGroup(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	if err := h.session.RemoveSkillGroup(index); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

type skillItemReq struct {
	Item string `json:"item"`
}

func (h *Handler) AddSkillItem(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	var req skillItemReq
	if err := c.BodyParser(&req); err != nil || req.Item == "" {
		return badRequest(c, "item required")
	}
	if err := h.session.AddSkillItem(index, req.Item); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveSkillItem(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	var req skillItemReq
	if err := c.BodyParser(&req); err != nil || req.Item == "" {
		return badRequest(c, "item required")
	}
	if err := h.session.RemoveSkillItem(index, req.Item); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddCertification(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddCertification())
}

func (h *Handler) UpdateCertification(c *fiber.Ctx) error {
	var entry model.Certification
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateCertification(c.Params("id"), entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveCertification(c *fiber.Ctx) error {
	if err := h.session.RemoveCertification(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddLanguage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddLanguage())
}

func (h *Handler) UpdateLanguage(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	var entry model.Language
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateLanguage(index, entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveLanguage(c *fiber.Ctx) error {
	index, err := parseIndex(c)
	if err != nil {
		return badRequest(c, "invalid index")
	}
	if err := h.session.RemoveLanguage(index); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) AddAward(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.session.AddAward())
}

func (h *Handler) UpdateAward(c *fiber.Ctx) error {
	var entry model.Award
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.session.UpdateAward(c.Params("id"), entry); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) RemoveAward(c *fiber.Ctx) error {
	if err := h.session.RemoveAward(c.Params("id")); err != nil {
		return sectionErr(c, err)
	}
	return c.JSON(h.session.Data())
}

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(h.session.Settings())
}

func (h *Handler) SetSettings(c *fiber.Ctx) error {
	var settings model.ResumeSettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "invalid payload")
	}
	h.session.SetSettings(settings)
	return c.JSON(h.session.Settings())
}

// Preview renders the current resume with the current settings as an HTML
// fragment.
func (h *Handler) Preview(c *fiber.Ctx) error {
	data, settings := h.session.Snapshot()
	fragment, err := render.Render(data, settings)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fragment)
}
