package dto

import "time"

// UpdateCompanyRequest sobrescritura completa del perfil de la empresa seleccionada.
type UpdateCompanyRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Ward          string `json:"ward" validate:"max=200"`
	District      string `json:"district" validate:"max=200"`
	State         string `json:"state" validate:"max=100"`
	PinCode       string `json:"pinCode" validate:"max=50"`
	GSTIN         string `json:"gstin" validate:"omitempty,len=15,alphanum"`
	PAN           string `json:"pan" validate:"max=10"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactPerson string `json:"contactPerson" validate:"max=200"`
	ContactNo     string `json:"contactNo" validate:"omitempty,max=20,inphone"`
	BankName      string `json:"bankName" validate:"max=200"`
	AccountNo     string `json:"accountNo" validate:"omitempty,max=34,numeric"`
	IFSC          string `json:"ifsc" validate:"omitempty,len=11,alphanum"`
	Branch        string `json:"branch" validate:"max=200"`
}

// SelectCompanyRequest cambio de empresa activa.
type SelectCompanyRequest struct {
	CompanyID string `json:"companyId" validate:"required"`
}

// CompanyResponse perfil de empresa.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Ward          string    `json:"ward"`
	District      string    `json:"district"`
	State         string    `json:"state"`
	PinCode       string    `json:"pinCode"`
	GSTIN         string    `json:"gstin"`
	PAN           string    `json:"pan"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contactPerson"`
	ContactNo     string    `json:"contactNo"`
	BankName      string    `json:"bankName"`
	AccountNo     string    `json:"accountNo"`
	IFSC          string    `json:"ifsc"`
	Branch        string    `json:"branch"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CompanySummary entrada del selector de empresas.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SelectCompanyResponse token nuevo con la empresa seleccionada.
type SelectCompanyResponse struct {
	Token   string          `json:"token"`
	Company CompanyResponse `json:"company"`
}

// SignatureUploadResponse resultado de subir la firma.
type SignatureUploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
