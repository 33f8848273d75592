package entity

import "time"

// Company representa una de las razones sociales que emiten facturas de flete.
// El ID es un identificador legible (ej. "northWestLogistics") usado también en rutas de archivos.
type Company struct {
	ID            string
	Name          string
	Ward          string
	District      string
	State         string
	PinCode       string
	GSTIN         string
	PAN           string
	Email         string
	ContactPerson string
	ContactNo     string
	BankName      string
	AccountNo     string
	IFSC          string
	Branch        string
	UpdatedAt     time.Time
}

// AddressLines devuelve las líneas de dirección (ward, district, state, pin) en orden de impresión.
func (c *Company) AddressLines() []string {
	return []string{c.Ward, c.District, c.State, c.PinCode}
}
