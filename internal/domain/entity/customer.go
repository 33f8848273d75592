package entity

import "time"

// Customer representa un cliente (consignatario) al que se factura el flete.
// Las facturas guardan una copia de estos datos; editar el cliente no altera facturas previas.
type Customer struct {
	ID            string
	Name          string
	GSTIN         string
	Address       string
	ContactPerson string
	ContactNo     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot copia los datos del cliente que se imprimen en la factura.
func (c *Customer) Snapshot() CustomerSnapshot {
	return CustomerSnapshot{
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		ContactNo:     c.ContactNo,
	}
}
