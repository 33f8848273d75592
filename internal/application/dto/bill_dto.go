package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateBillRequest body de POST /api/generate-bill.
// BillNo vacío pide el siguiente número de la empresa. Los cargos son texto libre:
// lo que no se pueda interpretar cuenta como cero.
type GenerateBillRequest struct {
	CompanyID     string              `json:"companyId,omitempty"`
	BillNo        string              `json:"billNo" validate:"max=40"`
	BillDate      string              `json:"billDate" validate:"max=40"`
	PlaceOfSupply string              `json:"placeOfSupply" validate:"max=100"`
	Remarks       string              `json:"remarks" validate:"max=500"`
	GSTType       string              `json:"gstType" validate:"required,oneof=nogst instate outofstate"`
	Customer      BillCustomerInput   `json:"customer"`
	Items         []BillLineItemInput `json:"items" validate:"max=200,dive"`
}

// BillCustomerInput copia del cliente que se imprime en la factura.
type BillCustomerInput struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name" validate:"max=200"`
	GSTIN         string `json:"gstin" validate:"max=20"`
	Address       string `json:"address" validate:"max=500"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	ContactNo     string `json:"contactNo" validate:"max=20"`
}

// BillLineItemInput fila de flete. Un campo amount enviado por el cliente se ignora.
type BillLineItemInput struct {
	LRDate              string `json:"lrDate" validate:"max=40"`
	LRNo                string `json:"lrNo" validate:"max=40"`
	VehicleNo           string `json:"vehicleNo" validate:"max=40"`
	FromLocation        string `json:"fromLocation" validate:"max=100"`
	ToLocation          string `json:"toLocation" validate:"max=100"`
	FreightCharge       string `json:"freightCharge" validate:"max=20"`
	DocumentCharges     string `json:"documentCharges" validate:"max=20"`
	LoadingCharges      string `json:"loadingCharges" validate:"max=20"`
	DoorDeliveryCharges string `json:"doorDeliveryCharges" validate:"max=20"`
	HaltingCharges      string `json:"haltingCharges" validate:"max=20"`
	OtherCharges        string `json:"otherCharges" validate:"max=20"`
}

// TotalsResponse totales calculados en servidor.
type TotalsResponse struct {
	TaxableValue decimal.Decimal `json:"taxableValue"`
	SGST         decimal.Decimal `json:"sgst"`
	CGST         decimal.Decimal `json:"cgst"`
	IGST         decimal.Decimal `json:"igst"`
	GrandTotal   decimal.Decimal `json:"grandTotal"`
}

// BillRecordResponse entrada del historial de facturas.
type BillRecordResponse struct {
	ID           string          `json:"id"`
	BillNumber   string          `json:"billNumber"`
	CompanyID    string          `json:"companyId"`
	CustomerID   *string         `json:"customerId,omitempty"`
	CustomerName string          `json:"customerName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	GSTType      string          `json:"gstType"`
	GeneratedBy  string          `json:"generatedBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// BillListResponse historial paginado de la empresa.
type BillListResponse struct {
	Items []BillRecordResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// LastBillResponse última factura de una empresa.
type LastBillResponse struct {
	BillNumber  string    `json:"billNumber"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName"`
	GeneratedBy string    `json:"generatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NextBillNumberResponse número que se asignaría a la próxima factura sin número explícito.
type NextBillNumberResponse struct {
	CompanyID      string `json:"companyId"`
	LastBillNumber int64  `json:"lastBillNumber"`
	NextBillNumber int64  `json:"nextBillNumber"`
}
