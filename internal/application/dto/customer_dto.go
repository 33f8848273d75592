package dto

import "time"

// CustomerRequest body para crear o actualizar un cliente.
type CustomerRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	GSTIN         string `json:"gstin" validate:"omitempty,len=15,alphanum"`
	Address       string `json:"address" validate:"max=500"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	ContactNo     string `json:"contactNo" validate:"omitempty,max=20,inphone"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GSTIN         string    `json:"gstin"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	ContactNo     string    `json:"contactNo"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
