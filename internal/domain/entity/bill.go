package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxMode modo de GST aplicado a la factura.
type TaxMode string

const (
	TaxModeNone       TaxMode = "nogst"      // Bill Of Supply, sin impuestos
	TaxModeInState    TaxMode = "instate"    // SGST 9% + CGST 9%
	TaxModeOutOfState TaxMode = "outofstate" // IGST 18%
)

// Valid indica si el modo es uno de los tres soportados.
func (m TaxMode) Valid() bool {
	switch m {
	case TaxModeNone, TaxModeInState, TaxModeOutOfState:
		return true
	}
	return false
}

// DocumentTitle devuelve el título impreso en la cabecera.
func (m TaxMode) DocumentTitle() string {
	if m == TaxModeNone {
		return "Bill Of Supply"
	}
	return "Tax Invoice"
}

// LineItem es una fila de flete (un Lorry Receipt). Los cargos llegan como texto libre;
// Amount siempre se recalcula con gst.LineAmount y nunca se toma de la entrada.
type LineItem struct {
	LRDate              string
	LRNo                string
	VehicleNo           string
	FromLocation        string
	ToLocation          string
	FreightCharge       string
	DocumentCharges     string
	LoadingCharges      string
	DoorDeliveryCharges string
	HaltingCharges      string
	OtherCharges        string
	Amount              decimal.Decimal
}

// Charges devuelve los seis cargos en el orden de las columnas de la tabla.
func (li LineItem) Charges() [6]string {
	return [6]string{
		li.FreightCharge,
		li.DocumentCharges,
		li.LoadingCharges,
		li.DoorDeliveryCharges,
		li.HaltingCharges,
		li.OtherCharges,
	}
}

// Totals totales de la factura, todos redondeados a 2 decimales.
type Totals struct {
	TaxableValue decimal.Decimal
	SGST         decimal.Decimal
	CGST         decimal.Decimal
	IGST         decimal.Decimal
	GrandTotal   decimal.Decimal
}

// CustomerSnapshot copia de los datos del cliente tomada al generar la factura.
type CustomerSnapshot struct {
	Name          string
	GSTIN         string
	Address       string
	ContactPerson string
	ContactNo     string
}

// BillDraft borrador recibido del operador. BillNo vacío significa "asignar el siguiente".
type BillDraft struct {
	BillNo        string
	BillDate      string
	PlaceOfSupply string
	Remarks       string
	CustomerID    string // opcional; solo se guarda como referencia en el registro de auditoría
	Customer      CustomerSnapshot
	Items         []LineItem
	TaxMode       TaxMode
}

// BillRecord registro de auditoría de una factura generada. Solo inserción.
type BillRecord struct {
	ID           string
	BillNumber   string
	CompanyID    string
	CustomerID   *string
	CustomerName string
	TotalAmount  decimal.Decimal
	TaxMode      TaxMode
	GeneratedBy  string
	CreatedAt    time.Time
}

// LastBill última factura emitida por una empresa (vista de /bills/last).
type LastBill struct {
	BillNumber  string
	CompanyID   string
	CompanyName string
	GeneratedBy string
	CreatedAt   time.Time
}

// BillCounter contador de numeración por empresa.
type BillCounter struct {
	CompanyID      string
	LastBillNumber int64
	UpdatedAt      time.Time
}
