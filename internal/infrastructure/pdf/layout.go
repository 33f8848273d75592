// Package pdf implementa la factura de flete imprimible (Tax Invoice / Bill Of Supply).
//
// La página se describe como una tabla declarativa de franjas (Band) y celdas (Cell)
// con medidas en puntos tipográficos. Layout construye esa tabla a partir del documento
// y el generador Maroto la dibuja sin decidir nada por su cuenta:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABECERA: empresa emisora          │  Tax Invoice           │
//	│  CLIENTE (izq)                      │  DATOS FACTURA (der)   │
//	│  Reverse charge                     │  Place of supply       │
//	│  TABLA: 13 columnas, una fila por Lorry Receipt              │
//	│  Remarks                                                     │
//	│                            │ taxable / SGST / CGST / IGST    │
//	│                            │ Grand Total                     │
//	│  Amount in words                                             │
//	│  Términos, banco, GST       │  For <empresa> + firma         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"strconv"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/domain/gst"
)

// ── Constantes de página (puntos) ─────────────────────────────────────────────

const (
	PageMargin   = 40.0
	ContentWidth = 515 // A4 (595pt) menos dos márgenes de 40pt

	headerHeight      = 110.0
	detailsHeight     = 95.0
	placeHeight       = 20.0
	tableHeaderHeight = 35.0
	itemRowHeight     = 22.0
	remarksHeight     = 20.0
	taxRowHeight      = 18.0
	grandTotalHeight  = 20.0
	wordsHeight       = 25.0
	termsHeight       = 32.0
	bankTitleHeight   = 20.0
	bankHeight        = 62.0
	gstHeight         = 70.0

	taxIndent     = 320 // la tabla de impuestos empieza en x=360
	taxLabelWidth = 100
	taxValueWidth = 95

	addressRows = 2

	cellPadding = 3.0 // margen interior superior e izquierdo
	lineSpacing = 1.3 // alto de línea = tamaño de fuente * lineSpacing
)

// Align alineación horizontal de una línea de texto.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Line una línea de texto dentro de una celda.
type Line struct {
	Text  string
	Size  float64
	Bold  bool
	Align Align
	Rows  int // líneas reservadas para texto que envuelve; 0 equivale a 1
}

// Height alto vertical que ocupa la línea, en puntos.
func (l Line) Height() float64 {
	rows := l.Rows
	if rows < 1 {
		rows = 1
	}
	return l.Size * lineSpacing * float64(rows)
}

// Side lados de un marco.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideTop
	SideRight
	SideBottom

	SideAll = SideLeft | SideTop | SideRight | SideBottom
)

// Cell una columna de la franja. Width está en unidades de la grilla (1 unidad = 1pt).
type Cell struct {
	Width  int
	Lines  []Line
	Border bool
	Image  []byte // PNG de la firma
}

// Band una fila horizontal de la página. Border enmarca la franja completa;
// Sides dibuja solo algunos lados, para bloques que continúan en la franja siguiente.
type Band struct {
	Name   string
	Height float64
	Border bool
	Sides  Side
	Cells  []Cell
}

// Frame lados que se dibujan alrededor de la franja.
func (b Band) Frame() Side {
	if b.Border {
		return SideAll
	}
	return b.Sides
}

// LineTops posición vertical (puntos, desde el borde superior de la celda) de cada línea.
func LineTops(c Cell) []float64 {
	tops := make([]float64, 0, len(c.Lines))
	top := cellPadding
	for _, l := range c.Lines {
		tops = append(tops, top)
		top += l.Height()
	}
	return tops
}

// ItemColumn columna de la tabla de Lorry Receipts.
type ItemColumn struct {
	Title string
	Width int
}

// ItemColumns las 13 columnas de la tabla de detalle; los anchos suman ContentWidth.
var ItemColumns = [13]ItemColumn{
	{"Sr.", 20},
	{"LR Date", 40},
	{"LR No.", 35},
	{"Vehicle No.", 47},
	{"From Location", 50},
	{"To Location", 50},
	{"Freight Charge in Rs.", 42},
	{"Document Charges", 37},
	{"Loading / Unloading Charges", 42},
	{"Door Delivery Charges", 37},
	{"Halting Charges", 32},
	{"Other Charges (Rs.)", 32},
	{"Amount (Rs.)", 51},
}

// Layout construye la página completa. Es una función pura: el mismo documento
// produce siempre la misma tabla de franjas.
func Layout(doc *billing.InvoiceDocument) []Band {
	bands := make([]Band, 0, 16+len(doc.Items))
	bands = append(bands, headerBand(doc), detailsBand(doc), placeBand(doc), tableHeaderBand())
	for i := range doc.Items {
		bands = append(bands, itemBand(doc, i))
	}
	bands = append(bands, remarksBand(doc))
	bands = append(bands, totalsBands(doc)...)
	bands = append(bands,
		Band{Name: "words", Height: wordsHeight, Border: true, Cells: []Cell{
			{Width: ContentWidth, Lines: []Line{{Text: "Amount in Words: " + doc.AmountInWords, Size: 9}}},
		}},
		Band{Name: "terms", Height: termsHeight, Border: true, Cells: []Cell{
			{Width: ContentWidth, Lines: []Line{
				{Text: "Terms & Conditions", Size: 9, Bold: true},
				{Text: `1) Payment by RTGS/NEFT/ Cheque only and to be made in Favor of "` + doc.Company.Name + `" only.`, Size: 8},
			}},
		}},
	)
	bands = append(bands, bankBands(doc)...)
	return bands
}

func headerBand(doc *billing.InvoiceDocument) Band {
	c := doc.Company
	lines := []Line{{Text: c.Name, Size: 18, Bold: true}}
	for _, l := range c.AddressLines() {
		lines = append(lines, small(l))
	}
	lines = append(lines,
		small("GSTIN - "+c.GSTIN),
		small("Pan No. - "+c.PAN),
		small("Email Id - "+c.Email),
	)
	return Band{Name: "header", Height: headerHeight, Border: true, Cells: []Cell{
		{Width: 340, Lines: lines},
		{Width: 175, Lines: []Line{{Text: doc.TaxMode.DocumentTitle(), Size: 16, Bold: true}}},
	}}
}

func detailsBand(doc *billing.InvoiceDocument) Band {
	cu := doc.Customer
	c := doc.Company
	customerLabels := labels("Customer Name:", "Customer GSTIN:", "Address:", "Contact Person:", "Contact No:")
	customerValues := values(cu.Name, cu.GSTIN, cu.Address, cu.ContactPerson, cu.ContactNo)
	// La dirección suele ocupar dos renglones en 172pt.
	customerLabels[2].Rows = addressRows
	customerValues[2].Rows = addressRows
	return Band{Name: "details", Height: detailsHeight, Border: true, Cells: []Cell{
		{Width: 85, Lines: customerLabels},
		{Width: 172, Lines: customerValues},
		{Width: 120, Border: true, Lines: labels("Bill No:", "Bill Date:", "Contact Person:", "Contact No:")},
		{Width: 138, Lines: values(doc.BillNo, doc.BillDate, c.ContactPerson, c.ContactNo)},
	}}
}

func placeBand(doc *billing.InvoiceDocument) Band {
	return Band{Name: "place", Height: placeHeight, Border: true, Cells: []Cell{
		{Width: 160, Lines: []Line{small("Tax is payable on Reverse Charge (Y/N):")}},
		{Width: 97, Lines: []Line{{Text: "No", Size: 8, Bold: true}}},
		{Width: 90, Border: true, Lines: []Line{small("Place of Supply")}},
		{Width: 168, Lines: []Line{{Text: doc.PlaceOfSupply, Size: 8, Bold: true}}},
	}}
}

func tableHeaderBand() Band {
	cells := make([]Cell, 0, len(ItemColumns))
	for _, col := range ItemColumns {
		cells = append(cells, Cell{Width: col.Width, Border: true, Lines: []Line{
			{Text: col.Title, Size: 6, Bold: true, Align: AlignCenter},
		}})
	}
	return Band{Name: "table-header", Height: tableHeaderHeight, Cells: cells}
}

func itemBand(doc *billing.InvoiceDocument, i int) Band {
	it := doc.Items[i]
	texts := []string{strconv.Itoa(i + 1), it.LRDate, it.LRNo, it.VehicleNo, it.FromLocation, it.ToLocation}
	for _, raw := range it.Charges() {
		texts = append(texts, gst.FormatCharge(raw))
	}
	texts = append(texts, gst.FormatINR(it.Amount))

	cells := make([]Cell, 0, len(ItemColumns))
	for j, col := range ItemColumns {
		cells = append(cells, Cell{Width: col.Width, Border: true, Lines: []Line{
			{Text: texts[j], Size: 7, Align: AlignCenter},
		}})
	}
	return Band{Name: "item-" + strconv.Itoa(i+1), Height: itemRowHeight, Cells: cells}
}

func remarksBand(doc *billing.InvoiceDocument) Band {
	return Band{Name: "remarks", Height: remarksHeight, Border: true, Cells: []Cell{
		{Width: 55, Lines: []Line{{Text: "Remarks:-", Size: 8, Bold: true}}},
		{Width: ContentWidth - 55, Lines: []Line{small(doc.Remarks)}},
	}}
}

// totalsBands las cuatro filas de impuestos se muestran siempre, aunque valgan cero.
func totalsBands(doc *billing.InvoiceDocument) []Band {
	t := doc.Totals
	row := func(name, label string, value string, h, size float64) Band {
		return Band{Name: name, Height: h, Sides: SideLeft | SideRight, Cells: []Cell{
			{Width: taxIndent},
			{Width: taxLabelWidth, Border: true, Lines: []Line{{Text: label, Size: size, Bold: true}}},
			{Width: taxValueWidth, Border: true, Lines: []Line{{Text: value, Size: size, Bold: true, Align: AlignRight}}},
		}}
	}
	return []Band{
		row("taxable", "Total taxable value of supply", gst.FormatINR(t.TaxableValue), taxRowHeight, 7),
		row("sgst", "SGST @ 9%", gst.FormatINR(t.SGST), taxRowHeight, 9),
		row("cgst", "CGST @ 9%", gst.FormatINR(t.CGST), taxRowHeight, 9),
		row("igst", "IGST @ 18%", gst.FormatINR(t.IGST), taxRowHeight, 9),
		row("grand-total", "Grand Total Rs", gst.FormatINR(t.GrandTotal), grandTotalHeight, 10),
	}
}

func bankBands(doc *billing.InvoiceDocument) []Band {
	c := doc.Company
	return []Band{
		{Name: "bank-title", Height: bankTitleHeight, Sides: SideLeft | SideTop | SideRight, Cells: []Cell{
			{Width: taxIndent, Lines: []Line{{Text: "Bank NEFT/RTGS Details:", Size: 9, Bold: true}}},
			{Width: ContentWidth - taxIndent, Lines: []Line{{Text: "For " + c.Name, Size: 9}}},
		}},
		{Name: "bank", Height: bankHeight, Sides: SideLeft | SideRight, Cells: []Cell{
			{Width: 90, Lines: []Line{small("Bank Name"), small("Bank Account No."), small("IFSC Code"), small("")}},
			{Width: taxIndent - 90, Lines: []Line{
				small(":- " + c.BankName),
				small(":- " + c.AccountNo),
				small(":- " + c.IFSC),
				small(`(All digits are "Zero")`),
			}},
			{Width: ContentWidth - taxIndent, Image: doc.Signature},
		}},
		{Name: "gst", Height: gstHeight, Sides: SideLeft | SideRight | SideBottom, Cells: []Cell{
			{Width: 90, Lines: []Line{
				small("Branch Name"),
				small("PAN No."),
				small(""),
				{Text: "GST DETAILS", Size: 9, Bold: true},
				small("GSTIN"),
			}},
			{Width: taxIndent - 90, Lines: []Line{
				small(":- " + c.Branch),
				small(":- " + c.PAN),
				small(""),
				small(""),
				small(":- " + c.GSTIN),
			}},
			{Width: ContentWidth - taxIndent},
		}},
	}
}

func small(s string) Line { return Line{Text: s, Size: 8} }

func labels(ss ...string) []Line {
	out := make([]Line, 0, len(ss))
	for _, s := range ss {
		out = append(out, Line{Text: s, Size: 8, Bold: true})
	}
	return out
}

func values(ss ...string) []Line {
	out := make([]Line, 0, len(ss))
	for _, s := range ss {
		out = append(out, small(s))
	}
	return out
}
