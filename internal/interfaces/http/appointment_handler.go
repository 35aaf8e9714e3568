package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
)

// AppointmentHandler maneja la agenda (cualquier funcionario autenticado).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar agendamientos
// @Description  Sin date: colección completa por fecha y hora. Con date: agenda del día por hora.
// @Tags         appointments
// @Security     BearerAuth
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD"
// @Success      200   {object}  dto.AppointmentListResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.JSON(h.uc.List(c.Context()))
	}
	out, err := h.uc.Agenda(c.Context(), date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear agendamiento
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppointmentRequest  true  "agendamiento"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir agendamiento
// @Tags         appointments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID"
// @Param        body  body  dto.AppointmentRequest  true  "agendamiento"
// @Success      200   {object}  dto.AppointmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var in dto.AppointmentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar agendamiento
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "ID"
// @Success      204
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
