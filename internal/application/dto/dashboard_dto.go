package dto

import "github.com/shopspring/decimal"

// DashboardQuery parámetros de GET /api/dashboard/summary.
type DashboardQuery struct {
	Date          string `query:"date"`      // YYYY-MM-DD; vacío = hoy
	UseDateFilter bool   `query:"byDate"`    // lista mostrada filtrada por Date
	Insurance     string `query:"insurance"` // all | insurance | particular
}

// StatsDTO indicadores de un alcance (toda la colección o una fecha).
type StatsDTO struct {
	TodayAppointments   int             `json:"todayAppointments"`
	TodayRevenue        decimal.Decimal `json:"todayRevenue"`
	TotalAppointments   int             `json:"totalAppointments"`
	InsurancePercentage decimal.Decimal `json:"insurancePercentage"`
}

// PieSliceDTO porción del gráfico Seguro / Particular.
type PieSliceDTO struct {
	Name   string          `json:"name"`
	Filter string          `json:"filter"`
	Value  decimal.Decimal `json:"value"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Overall   StatsDTO      `json:"overall"`
	Date      string        `json:"date"`
	DateStats StatsDTO      `json:"dateStats"`
	Pie       []PieSliceDTO `json:"pie"`

	// Lista mostrada: toda la colección o solo la fecha si UseDateFilter
	UseDateFilter bool                  `json:"useDateFilter"`
	Appointments  []AppointmentResponse `json:"appointments"`

	// Porción seleccionada del gráfico sobre la colección completa
	InsuranceFilter       string                `json:"insuranceFilter"`
	InsuranceAppointments []AppointmentResponse `json:"insuranceAppointments"`

	Stale bool `json:"stale"`
}
