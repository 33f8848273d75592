// Package gst contiene la lógica pura de facturación de flete: importes de línea,
// impuestos GST, importe en letras y formato de moneda india.
package gst

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount techo exclusivo de cualquier importe (columna NUMERIC(14,2)).
var MaxAmount = decimal.New(1, 12)

// plainMoney solo dígitos con signo y decimales opcionales; sin exponentes.
var plainMoney = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseMoneyOrZero interpreta un cargo ingresado como texto libre.
// Vacío, espacios o texto no numérico valen cero; los negativos se aceptan tal cual.
// Se toleran separadores de miles con coma ("1,500.00"). La notación exponencial y los
// valores con |x| >= MaxAmount también valen cero.
func ParseMoneyOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || !plainMoney.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Abs().GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero
	}
	return d
}

// WithinLimit indica si |d| cabe en la columna de importes.
func WithinLimit(d decimal.Decimal) bool {
	return d.Abs().LessThan(MaxAmount)
}
