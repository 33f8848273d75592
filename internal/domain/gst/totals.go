package gst

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

var (
	// RateHalf tasa de SGST y de CGST (en estado).
	RateHalf = decimal.RequireFromString("0.09")
	// RateFull tasa de IGST (fuera de estado).
	RateFull = decimal.RequireFromString("0.18")
)

// LineAmount suma los seis cargos de la línea aplicando ParseMoneyOrZero, redondeado a 2 decimales.
func LineAmount(item entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, c := range item.Charges() {
		sum = sum.Add(ParseMoneyOrZero(c))
	}
	return sum.Round(2)
}

// ApplyLineAmounts devuelve una copia de los items con Amount recalculado.
func ApplyLineAmounts(items []entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, len(items))
	for i, it := range items {
		it.Amount = LineAmount(it)
		out[i] = it
	}
	return out
}

// CalculateTotals calcula base gravable, impuestos y total según el modo.
// Cada componente se redondea a 2 decimales (mitad lejos de cero) y el total es la suma de
// los componentes ya redondeados, de modo que el total impreso cuadra con las filas.
// Un modo desconocido se trata como sin impuestos. Nunca falla.
func CalculateTotals(items []entity.LineItem, mode entity.TaxMode) entity.Totals {
	taxable := decimal.Zero
	for _, it := range items {
		taxable = taxable.Add(LineAmount(it))
	}
	taxable = taxable.Round(2)

	t := entity.Totals{
		TaxableValue: taxable,
		SGST:         decimal.Zero,
		CGST:         decimal.Zero,
		IGST:         decimal.Zero,
	}
	switch mode {
	case entity.TaxModeInState:
		t.SGST = taxable.Mul(RateHalf).Round(2)
		t.CGST = taxable.Mul(RateHalf).Round(2)
	case entity.TaxModeOutOfState:
		t.IGST = taxable.Mul(RateFull).Round(2)
	}
	t.GrandTotal = t.TaxableValue.Add(t.SGST).Add(t.CGST).Add(t.IGST)
	return t
}
