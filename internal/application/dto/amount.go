package dto

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount valor monetario opcional. La decodificación es tolerante: números y strings
// numéricos se aceptan; null, vacío o cualquier otra cosa quedan como "sin valor".
type Amount struct {
	Value *decimal.Decimal
}

// NewAmount envuelve un decimal opcional.
func NewAmount(d *decimal.Decimal) Amount {
	return Amount{Value: d}
}

// UnmarshalJSON nunca falla: un valor no numérico equivale a ausente.
func (a *Amount) UnmarshalJSON(b []byte) error {
	a.Value = nil
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	a.Value = &d
	return nil
}

// MarshalJSON emite el número sin comillas, o null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte("null"), nil
	}
	return []byte(a.Value.String()), nil
}
