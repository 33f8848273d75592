package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR formatea un importe con agrupación india y 2 decimales fijos, sin símbolo.
// Ej.: 1234567.89 -> "12,34,567.89".
func FormatINR(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + groupIndian(intPart) + "." + frac
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, last3 := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead == 1 {
		b.WriteString(head[:1])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(last3)
	return b.String()
}

// FormatCharge muestra un cargo de línea ya interpretado por ParseMoneyOrZero.
func FormatCharge(raw string) string {
	return FormatINR(ParseMoneyOrZero(raw))
}
