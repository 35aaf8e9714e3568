// Package money formatea valores monetarios en reales (pt-BR) para reportes.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Format devuelve el valor con separadores pt-BR, ej: 1234.5 → "R$ 1.234,50".
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}

// FormatPercent devuelve un porcentaje con un decimal, ej: 33.333 → "33,3%".
func FormatPercent(d decimal.Decimal) string {
	f, _ := d.Round(1).Float64()
	return printer.Sprintf("%.1f%%", f)
}
