package dto

import "github.com/jhoicas/agenda-api/internal/domain/entity"

// FromEmployee convierte un perfil en su respuesta.
func FromEmployee(e *entity.Employee) EmployeeResponse {
	if e == nil {
		return EmployeeResponse{}
	}
	return EmployeeResponse{
		ID:      e.ID,
		Name:    e.Name,
		Email:   e.Email,
		IsAdmin: e.IsAdmin,
		Role:    e.Role(),
	}
}

// FromEmployees convierte una lista de perfiles; nunca devuelve nil.
func FromEmployees(list []*entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		if e != nil {
			out = append(out, FromEmployee(e))
		}
	}
	return out
}

// FromAppointment convierte un agendamiento en su respuesta.
func FromAppointment(a *entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		Date:        a.Date,
		Time:        a.Time,
		ClientName:  a.ClientName,
		ClientPhone: a.ClientPhone,
		CarModel:    a.CarModel,
		Service:     a.Service,
		Value:       NewAmount(a.Value),
		IsInsurance: a.IsInsurance,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
}

// FromAppointments convierte una lista conservando el orden; nunca devuelve nil.
func FromAppointments(list []*entity.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		if a != nil {
			out = append(out, FromAppointment(a))
		}
	}
	return out
}
