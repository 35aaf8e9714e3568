package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formatos de fecha y hora de un agendamiento. Ambos tienen ancho fijo y ceros a la
// izquierda, por lo que el orden lexicográfico coincide con el cronológico.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidDate indica si s es una fecha YYYY-MM-DD válida y con ancho fijo.
func ValidDate(s string) bool { return fixedWidth(DateLayout, s) }

// ValidTime indica si s es una hora HH:MM válida y con ancho fijo. time.Parse acepta
// "9:00" para el campo de hora, por eso se exige que el formato reproduzca la entrada.
func ValidTime(s string) bool { return fixedWidth(TimeLayout, s) }

func fixedWidth(layout, s string) bool {
	t, err := time.Parse(layout, s)
	return err == nil && t.Format(layout) == s
}

// Appointment representa un agendamiento del taller.
type Appointment struct {
	ID          string // lo asigna el almacén al crear
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	ClientName  string
	ClientPhone string
	CarModel    string
	Service     string
	Value       *decimal.Decimal // nil = sin valor informado
	IsInsurance bool
	CreatedBy   string // nombre de quien creó o guardó por última vez
	CreatedAt   time.Time
}

// Amount devuelve el valor del agendamiento; ausente cuenta como cero.
func (a *Appointment) Amount() decimal.Decimal {
	if a == nil || a.Value == nil {
		return decimal.Zero
	}
	return *a.Value
}
