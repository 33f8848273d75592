// Package export genera el registro de facturas de una empresa en formato XLSX.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

const sheetName = "Bills"

var headers = []interface{}{"Bill No", "Date", "Customer", "GST Type", "Total Amount (Rs.)", "Generated By"}

var _ billing.BillRegisterExporter = (*ExcelExporter)(nil)

// ExcelExporter implementa billing.BillRegisterExporter con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// ExportBills escribe una fila por factura con la empresa en el título de la hoja.
func (e *ExcelExporter) ExportBills(company *entity.Company, records []*entity.BillRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: hoja: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", company.Name+" - Bill Register"); err != nil {
		return nil, fmt.Errorf("export: título: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A3", &headers); err != nil {
		return nil, fmt.Errorf("export: cabecera: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "F3", bold); err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("export: estilo: %w", err)
	}

	for i, r := range records {
		rowNo := i + 4
		cell, _ := excelize.CoordinatesToCellName(1, rowNo)
		row := []interface{}{
			r.BillNumber,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.CustomerName,
			string(r.TaxMode),
			r.TotalAmount.InexactFloat64(),
			r.GeneratedBy,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("export: fila %d: %w", rowNo, err)
		}
		amountCell, _ := excelize.CoordinatesToCellName(5, rowNo)
		if err := f.SetCellStyle(sheetName, amountCell, amountCell, money); err != nil {
			return nil, fmt.Errorf("export: estilo: %w", err)
		}
	}
	if err := f.SetColWidth(sheetName, "A", "F", 20); err != nil {
		return nil, fmt.Errorf("export: ancho: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
