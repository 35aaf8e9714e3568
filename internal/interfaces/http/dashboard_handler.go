package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/agenda-api/internal/application/analytics"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/report"
)

// DashboardHandler maneja los endpoints del dashboard (solo admin).
type DashboardHandler struct {
	uc      *appanalytics.DashboardUseCase
	reports *report.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, reports *report.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, reports: reports}
}

// GetSummary devuelve indicadores, gráfico y listas filtradas.
// GET /api/dashboard/summary?date=YYYY-MM-DD&byDate=true&insurance=all|insurance|particular
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, parseQueryError())
	}
	summary, err := h.uc.GetSummary(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// AgendaPDF descarga la agenda del día en PDF.
// GET /api/dashboard/agenda.pdf?date=YYYY-MM-DD
func (h *DashboardHandler) AgendaPDF(c *fiber.Ctx) error {
	b, filename, err := h.reports.DayAgendaPDF(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, b)
}

// AppointmentsXLSX descarga la planilla de agendamientos (opcionalmente de una fecha).
// GET /api/dashboard/appointments.xlsx?date=YYYY-MM-DD
func (h *DashboardHandler) AppointmentsXLSX(c *fiber.Ctx) error {
	b, filename, err := h.reports.AppointmentsXLSX(c.Context(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, b)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, b []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(b)
}
