package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	onesWords = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
		"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
		"Seventeen", "Eighteen", "Nineteen",
	}
	tensWords = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
	}
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

// AmountInWords convierte rupees enteros a palabras con agrupación india.
// Ej.: 1180 -> "One Thousand One Hundred Eighty Rupees Only".
// Un conteo de crores >= 1000 se descompone de nuevo con la misma agrupación.
func AmountInWords(n int64) string {
	if n == 0 {
		return "Zero Rupees Only"
	}
	if n < 0 {
		return "Minus " + indianWords(-n) + " Rupees Only"
	}
	return indianWords(n) + " Rupees Only"
}

// TotalInWords aplica AmountInWords a la parte entera (truncada) del total.
func TotalInWords(total decimal.Decimal) string {
	return AmountInWords(total.IntPart())
}

func indianWords(n int64) string {
	parts := make([]string, 0, 4)
	if c := n / crore; c > 0 {
		if c >= thousand {
			parts = append(parts, indianWords(c)+" Crore")
		} else {
			parts = append(parts, belowThousand(c)+" Crore")
		}
		n %= crore
	}
	if l := n / lakh; l > 0 {
		parts = append(parts, belowThousand(l)+" Lakh")
		n %= lakh
	}
	if t := n / thousand; t > 0 {
		parts = append(parts, belowThousand(t)+" Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return onesWords[n]
	case n < 100:
		if n%10 == 0 {
			return tensWords[n/10]
		}
		return tensWords[n/10] + " " + onesWords[n%10]
	}
	if n%100 == 0 {
		return onesWords[n/100] + " Hundred"
	}
	return onesWords[n/100] + " Hundred " + belowThousand(n%100)
}
