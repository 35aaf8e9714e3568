package dto

import "time"

// AppointmentRequest entrada para crear o sobrescribir un agendamiento.
// Fecha y hora deben tener ancho fijo (YYYY-MM-DD, HH:MM) porque son la clave de orden.
type AppointmentRequest struct {
	Date        string `json:"date" validate:"required,isodate"`
	Time        string `json:"time" validate:"required,clock"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	CarModel    string `json:"carModel"`
	Service     string `json:"service"`
	Value       Amount `json:"value"`
	IsInsurance bool   `json:"isInsurance"`
}

// AppointmentResponse salida de un agendamiento.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	ClientName  string    `json:"clientName,omitempty"`
	ClientPhone string    `json:"clientPhone,omitempty"`
	CarModel    string    `json:"carModel,omitempty"`
	Service     string    `json:"service,omitempty"`
	Value       Amount    `json:"value"`
	IsInsurance bool      `json:"isInsurance"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AppointmentListResponse colección completa (o la agenda de un día).
// Stale indica que la lectura falló y se sirve la última copia conocida (o vacía).
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Total int                   `json:"total"`
	Date  string                `json:"date,omitempty"`
	Stale bool                  `json:"stale"`
}
